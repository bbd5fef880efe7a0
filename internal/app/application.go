package app

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/DictPanel/internal/api"
	"github.com/Rorical/DictPanel/internal/config"
	"github.com/Rorical/DictPanel/internal/core"
	"github.com/Rorical/DictPanel/internal/dispatcher"
	"github.com/Rorical/DictPanel/internal/endpoints"
	"github.com/Rorical/DictPanel/internal/eventbus"
	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/plugin"
	"github.com/Rorical/DictPanel/internal/savefile"
)

// Version is reported in the User-Agent and by --version.
const Version = "0.1.0"

var ErrNotConfigured = errors.New("no base URL configured, run `dictpanel profile add` or set DICTPANEL_BASE_URL")

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.DictionaryService
	client     *api.Client
	registry   *plugin.Registry
	localizer  *i18n.Localizer
}

// Option configures an Application.
type Option func(*options)

type options struct {
	notifier       core.Notifier
	saveDir        string
	embeddingToken string
}

// WithNotifier sends toasts somewhere other than the panel, for commands
// that run without it.
func WithNotifier(n core.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithDownloadDir overrides the configured download directory.
func WithDownloadDir(dir string) Option {
	return func(o *options) {
		o.saveDir = dir
	}
}

// WithEmbeddingToken overrides the configured embedding token.
func WithEmbeddingToken(token string) Option {
	return func(o *options) {
		o.embeddingToken = token
	}
}

func NewApplication(cfg *config.Config, opts ...Option) (*Application, error) {
	if !cfg.IsValid() {
		return nil, ErrNotConfigured
	}
	o := options{saveDir: cfg.DownloadDir(), embeddingToken: cfg.EmbeddingToken()}
	for _, opt := range opts {
		opt(&o)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	loc := bundle.Localizer(cfg.Locale())

	client := api.NewClient(cfg.BaseURL(), endpoints.New(),
		api.WithSessionToken(cfg.SessionToken()),
		api.WithTimeout(cfg.HTTPTimeout()),
		api.WithUserAgent("dictpanel/"+Version),
	)

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		log.Printf("event bus: %v", err)
	})
	disp := dispatcher.NewEventDispatcher(eb)

	serviceOpts := []core.ServiceOption{core.WithEventBus(eb)}
	if o.notifier != nil {
		serviceOpts = append(serviceOpts, core.WithNotifier(o.notifier))
	}
	service := core.NewDictionaryService(client, savefile.DirSaver{Dir: o.saveDir}, loc, serviceOpts...)

	registry := plugin.NewRegistry()
	if err := RegisterContentTranslation(registry, ContentTranslationDeps{
		Client:     client,
		Dispatcher: disp,
		Localizer:  loc,
	}); err != nil {
		return nil, err
	}

	if o.embeddingToken != "" {
		if err := registry.ContentTranslation().SetEndpointsForStaticEmbedding(o.embeddingToken); err != nil {
			return nil, fmt.Errorf("set embedding token: %w", err)
		}
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		client:     client,
		registry:   registry,
		localizer:  loc,
	}, nil
}

// Start runs the settings panel until the user quits.
func (app *Application) Start() error {
	app.service.Start()

	panel := app.registry.ContentTranslation().NewConfigurationPanel()
	if panel == nil {
		return plugin.ErrNotInstalled
	}
	_, err := tea.NewProgram(panel).Run()
	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}

func (app *Application) Service() *core.DictionaryService {
	return app.service
}

func (app *Application) Registry() *plugin.Registry {
	return app.registry
}

func (app *Application) Localizer() *i18n.Localizer {
	return app.localizer
}
