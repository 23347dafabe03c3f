// Package links manages tracked short links.
//
// A tracked link maps a short random code to a destination URL and counts
// how often it was followed. The QR code then embeds the tracking URL
// instead of the destination, so every scan passes through the redirect
// endpoint and increments the counter.
//
//	svc := links.NewService(links.NewRedisRepository(client, "qrkit:"))
//	link, err := svc.Create(ctx, "https://example.com/landing")
//	if err != nil {
//		return err
//	}
//	target := links.TrackingURL("https://qr.example.com/r/", link.Code)
//
// Repositories exist for memory, Redis, PostgreSQL and MongoDB. Each one
// enforces code uniqueness and increments visits atomically on its own side.
package links
