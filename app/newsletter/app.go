package newsletter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/roundup/core/email"
	"github.com/dmitrymomot/roundup/core/email/templates"
	"github.com/dmitrymomot/roundup/core/email/templates/components"
	"github.com/dmitrymomot/roundup/core/logger"
	"github.com/dmitrymomot/roundup/core/storage"
	"github.com/dmitrymomot/roundup/integration/email/postmark"
	"github.com/dmitrymomot/roundup/integration/email/smtp"
	"github.com/dmitrymomot/roundup/integration/storage/s3"
	"github.com/dmitrymomot/roundup/pkg/textgen"
	"github.com/dmitrymomot/roundup/pkg/trends"
)

const (
	// Subject of every newsletter email.
	Subject = "Your AI Weekly Roundup!"
	// SenderName is the display name on the From header.
	SenderName = "AI Weekly Roundup"
	// OutputFile is the page name written under OUTPUT_DIR.
	OutputFile = "index.html"
	// MailTag labels the message for transports that support tagging.
	MailTag = "weekly-roundup"

	htmlContentType = "text/html; charset=utf-8"
)

// App runs one newsletter cycle: generate, render, dispatch.
type App struct {
	config    Config
	logger    *slog.Logger
	generator textgen.Generator
	sender    email.EmailSender
	output    storage.Storage
	publisher storage.Storage
}

type AppOption func(*App) error

// NewApp prepares a run. Collaborators that are not injected are built from
// cfg lazily, inside the stage that needs them, so a construction failure is
// reported against that stage.
func NewApp(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{
		config: cfg,
		logger: logger.New(logger.WithEnvironment(cfg.Env, cfg.AppName)),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

func WithGenerator(g textgen.Generator) AppOption {
	return func(app *App) error {
		if g == nil {
			return errors.New("generator cannot be nil")
		}
		app.generator = g
		return nil
	}
}

func WithSender(s email.EmailSender) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("email sender cannot be nil")
		}
		app.sender = s
		return nil
	}
}

// WithOutput replaces the local page writer.
func WithOutput(s storage.Storage) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("output storage cannot be nil")
		}
		app.output = s
		return nil
	}
}

// WithPublisher sets the remote storage the page is uploaded to after the
// local write. Without it, S3 is used only when PUBLISH_S3_BUCKET is set.
func WithPublisher(s storage.Storage) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("publisher cannot be nil")
		}
		app.publisher = s
		return nil
	}
}

// Run executes Generate, Render and Dispatch in order and stops at the first
// failure, which is returned as a *StageError.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	a.logger.InfoContext(ctx, "newsletter run started",
		logger.Event("run.started"),
		logger.Model(a.config.modelOrDefault()),
		logger.Count("recipients", len(a.config.RecipientList())),
	)

	items, err := a.Generate(ctx)
	if err != nil {
		return err
	}

	page, err := a.Render(ctx, items)
	if err != nil {
		return err
	}

	if err := a.Dispatch(ctx, page); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "newsletter run completed",
		logger.Component(string(StageDone)),
		logger.Event("run.completed"),
		logger.Count("items", len(items)),
		logger.Elapsed(start),
	)
	return nil
}

// Generate asks the model for trend items on the configured topic.
// One request, no retry.
func (a *App) Generate(ctx context.Context) ([]trends.NewsItem, error) {
	start := time.Now()
	log := a.logger.With(logger.Component(string(StageGenerating)))

	gen, err := a.newGenerator(ctx)
	if err != nil {
		return nil, fail(StageGenerating, err)
	}

	log.DebugContext(ctx, "requesting trends", logger.Key("topic", a.config.TopicPrompt))

	reply, err := gen.Generate(ctx, trends.Prompt(a.config.TopicPrompt))
	if err != nil {
		return nil, fail(StageGenerating, err)
	}

	items, err := trends.Parse(reply)
	if err != nil {
		log.DebugContext(ctx, "unparseable reply", logger.Key("reply", reply))
		return nil, fail(StageGenerating, err)
	}

	if !trends.InExpectedRange(len(items)) {
		log.WarnContext(ctx, "unexpected number of items",
			logger.Count("items", len(items)),
			logger.Count("min", trends.MinItems),
			logger.Count("max", trends.MaxItems),
		)
	}

	log.InfoContext(ctx, "trends generated",
		logger.Result("success"),
		logger.Count("items", len(items)),
		logger.Elapsed(start),
	)
	return items, nil
}

// Render builds the page from the template and writes it to OUTPUT_DIR/index.html.
// When a publisher is configured the page is uploaded too.
func (a *App) Render(ctx context.Context, items []trends.NewsItem) (string, error) {
	log := a.logger.With(logger.Component(string(StageRendering)))

	doc, err := templates.ReadDocument(a.config.TemplatePath)
	if err != nil {
		return "", fail(StageRendering, err)
	}

	page, err := templates.RenderInto(ctx, doc, components.Stories(items))
	if err != nil {
		return "", fail(StageRendering, err)
	}

	out := a.output
	if out == nil {
		out = storage.NewLocal(a.config.OutputDir)
	}
	path, err := out.Put(ctx, OutputFile, strings.NewReader(page), htmlContentType)
	if err != nil {
		return "", fail(StageRendering, err)
	}
	log.InfoContext(ctx, "page written", logger.Path(path), logger.Count("bytes", len(page)))

	pub, err := a.newPublisher(ctx)
	if err != nil {
		return "", fail(StageRendering, err)
	}
	if pub != nil {
		url, err := pub.Put(ctx, a.config.PublishKey, strings.NewReader(page), htmlContentType)
		if err != nil {
			return "", fail(StageRendering, err)
		}
		log.InfoContext(ctx, "page published", logger.Key("url", url))
	}

	return page, nil
}

// Dispatch sends page as the newsletter email to every configured recipient.
func (a *App) Dispatch(ctx context.Context, page string) error {
	log := a.logger.With(logger.Component(string(StageDispatching)))

	sender, err := a.newSender()
	if err != nil {
		return fail(StageDispatching, err)
	}

	err = sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   a.config.Recipients,
		Subject:  Subject,
		BodyHTML: page,
		Tag:      MailTag,
	})
	if err != nil {
		return fail(StageDispatching, err)
	}

	log.InfoContext(ctx, "newsletter sent",
		logger.Result("success"),
		logger.Key("transport", a.config.MailTransport),
		logger.Count("recipients", len(a.config.RecipientList())),
	)
	return nil
}

func (a *App) newGenerator(ctx context.Context) (textgen.Generator, error) {
	if a.generator != nil {
		return a.generator, nil
	}
	switch a.config.GeneratorBackend {
	case BackendOpenAI:
		return textgen.NewOpenAI(a.config.APIKey, textgen.WithOpenAIModel(a.config.modelOrDefault()))
	default:
		return textgen.NewGoogle(ctx, a.config.APIKey, textgen.WithGoogleModel(a.config.modelOrDefault()))
	}
}

func (a *App) newPublisher(ctx context.Context) (storage.Storage, error) {
	if a.publisher != nil {
		return a.publisher, nil
	}
	if !a.config.Publish.Enabled() {
		return nil, nil
	}
	return s3.New(ctx, a.config.Publish)
}

func (a *App) newSender() (email.EmailSender, error) {
	if a.sender != nil {
		return a.sender, nil
	}
	switch a.config.MailTransport {
	case TransportPostmark:
		return postmark.New(postmark.Config{
			PostmarkServerToken:  a.config.PostmarkServerToken,
			PostmarkAccountToken: a.config.PostmarkAccountToken,
			SenderEmail:          a.config.MailUser,
			SenderName:           SenderName,
		})
	case TransportDev:
		return email.NewDevSender(a.config.DevMailDir), nil
	default:
		return smtp.New(smtp.Config{
			Host:       a.config.MailHost,
			Port:       a.config.MailPort,
			Username:   a.config.MailUser,
			Password:   a.config.MailPassword,
			SenderName: SenderName,
		})
	}
}
