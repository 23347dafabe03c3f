// Package mongo connects to MongoDB with the official v2 driver.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//	db, err := mongo.ConnectDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	server.AddReadinessCheck("mongo", mongo.Healthcheck(db))
//
// Connect retries RetryAttempts times, waiting RetryInterval between attempts.
package mongo
