// Package pg opens pgx/v5 connection pools and applies goose migrations.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, links.Migrations, cfg, log); err != nil {
//		return err
//	}
//
// Migrate reads SQL files from any fs.FS, so packages can embed their own
// schema next to the code that uses it. Goose output is routed to the given
// logger.
//
// IsDuplicateKeyError and IsNotFoundError classify pgx errors without
// importing pgconn in business code.
package pg
