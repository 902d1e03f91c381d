package newsletter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/roundup/core/config"
	"github.com/dmitrymomot/roundup/core/email"
	"github.com/dmitrymomot/roundup/core/validator"
	"github.com/dmitrymomot/roundup/integration/storage/s3"
	"github.com/dmitrymomot/roundup/pkg/textgen"
)

// Generator backends.
const (
	BackendGenAI  = "genai"
	BackendOpenAI = "openai"
)

// Mail transports.
const (
	TransportSMTP     = "smtp"
	TransportPostmark = "postmark"
	TransportDev      = "dev"
)

// Config holds everything a run needs. It is loaded once and never mutated.
// The first seven fields are required; the rest have defaults.
type Config struct {
	APIKey       string `env:"GEMINI_API_KEY,required,notEmpty"`
	MailHost     string `env:"SMTP_HOST,required,notEmpty"`
	MailPort     string `env:"SMTP_PORT,required,notEmpty"`
	MailUser     string `env:"SMTP_USER,required,notEmpty"`
	MailPassword string `env:"SMTP_PASS,required,notEmpty"`
	Recipients   string `env:"RECIPIENT_EMAILS,required,notEmpty"`
	TopicPrompt  string `env:"NEWSLETTER_PROMPT,required,notEmpty"`

	AppName          string `env:"APP_NAME" envDefault:"roundup"`
	Env              string `env:"APP_ENV" envDefault:"production"`
	Model            string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash" validate:"required"`
	GeneratorBackend string `env:"GENERATOR_BACKEND" envDefault:"genai" validate:"in:genai,openai"`
	TemplatePath     string `env:"TEMPLATE_PATH" envDefault:"newsletter-template.html" validate:"required"`
	OutputDir        string `env:"OUTPUT_DIR" envDefault:"frontend" validate:"required"`

	MailTransport        string `env:"MAIL_TRANSPORT" envDefault:"smtp" validate:"in:smtp,postmark,dev"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevMailDir           string `env:"DEV_MAIL_DIR" envDefault:"dev_emails"`

	Publish    s3.S3Config
	PublishKey string `env:"PUBLISH_S3_KEY" envDefault:"index.html"`
}

// LoadConfig reads the run configuration.
// With a nil environ it reads the process environment (and .env, if present);
// otherwise only the given variables are consulted.
// Failures are returned as a *StageError for StageConfiguring.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	var err error
	if environ == nil {
		err = config.Load(&cfg)
	} else {
		err = config.LoadFrom(&cfg, environ)
	}
	if err != nil {
		return Config{}, &StageError{Stage: StageConfiguring, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, &StageError{Stage: StageConfiguring, Err: err}
	}
	return cfg, nil
}

// Validate checks the optional settings. The required ones are enforced while parsing.
func (c Config) Validate() error {
	err := validator.ValidateStruct(&c)

	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		return err
	}

	if c.MailTransport == TransportPostmark {
		if c.PostmarkServerToken == "" {
			verrs.Add(validator.ValidationError{
				Field:          "PostmarkServerToken",
				Message:        "is required when MAIL_TRANSPORT=postmark",
				TranslationKey: "validation.required",
			})
		}
		if c.PostmarkAccountToken == "" {
			verrs.Add(validator.ValidationError{
				Field:          "PostmarkAccountToken",
				Message:        "is required when MAIL_TRANSPORT=postmark",
				TranslationKey: "validation.required",
			})
		}
	}

	if c.Publish.Enabled() && strings.TrimSpace(c.PublishKey) == "" {
		verrs.Add(validator.ValidationError{
			Field:          "PublishKey",
			Message:        "is required when PUBLISH_S3_BUCKET is set",
			TranslationKey: "validation.required",
		})
	}

	if verrs.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: %w", config.ErrParsingConfig, verrs)
}

// RecipientList splits the raw recipient value on commas or semicolons,
// trimming blanks. Order is preserved.
func (c Config) RecipientList() []string {
	parts := strings.Split(email.NormalizeRecipients(c.Recipients), ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

// MissingVars lists the required variables that were absent or empty, if err
// came from LoadConfig.
func MissingVars(err error) []string {
	return config.MissingVars(err)
}

func (c Config) modelOrDefault() string {
	if c.Model == "" {
		return textgen.DefaultModel
	}
	return c.Model
}
