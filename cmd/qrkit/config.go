package main

// appConfig holds process-level settings. Store connections are configured
// by their own packages.
type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_SERVICE_NAME" envDefault:"qrkit"`
	// LinkStore selects the tracked link repository: memory, redis, postgres or mongo.
	LinkStore       string `env:"LINK_STORE" envDefault:"memory"`
	TrackingBaseURL string `env:"TRACKING_BASE_URL" envDefault:"http://localhost:8080/r/"`
	LinkCodeLength  int    `env:"LINK_CODE_LENGTH" envDefault:"7"`
}
