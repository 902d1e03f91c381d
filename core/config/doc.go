// Package config loads environment variables into typed structs using
// caarlos0/env. Struct tags declare names, defaults and which variables are
// mandatory.
//
// Load reads the process environment, pulling in a .env file on first use,
// and caches the result per type:
//
//	import "github.com/dmitrymomot/roundup/core/config"
//
//	type MailConfig struct {
//		Host string `env:"SMTP_HOST,required,notEmpty"`
//		Port string `env:"SMTP_PORT,required,notEmpty"`
//		From string `env:"SMTP_FROM" envDefault:"news@example.com"`
//	}
//
//	var cfg MailConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error.
//
// # Explicit variables
//
// LoadFrom reads only the given map and bypasses the cache. Tests use it to
// build a config in isolation:
//
//	var cfg MailConfig
//	err := config.LoadFrom(&cfg, map[string]string{"SMTP_PORT": "465"})
//	// errors.Is(err, config.ErrParsingConfig) == true
//
// # Reporting missing variables
//
// Every absent or empty required variable is reported at once. MissingVars
// pulls their names out of the error so they can be logged as a list:
//
//	names := config.MissingVars(err) // ["SMTP_HOST"]
//
// It returns nil for errors that did not come from parsing.
package config
