package app

import (
	"context"
	"errors"
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/DictPanel/internal/api"
	"github.com/Rorical/DictPanel/internal/dispatcher"
	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/plugin"
	"github.com/Rorical/DictPanel/internal/translate"
)

// ContentTranslationDeps is what the content-translation feature needs from
// the host.
type ContentTranslationDeps struct {
	Client     *api.Client
	Dispatcher *dispatcher.EventDispatcher
	Localizer  *i18n.Localizer
}

// RegisterContentTranslation installs the content-translation feature into
// the registry.
func RegisterContentTranslation(reg *plugin.Registry, deps ContentTranslationDeps) error {
	dict := &dictionaryCache{client: deps.Client}
	return reg.InstallContentTranslation(plugin.ContentTranslation{
		Enabled: true,
		NewConfigurationPanel: func() tea.Model {
			return NewPanelModel(deps.Dispatcher, deps.Localizer)
		},
		Hooks:                          dict.Hooks,
		SetEndpointsForStaticEmbedding: deps.Client.Endpoints().SetStaticEmbeddingToken,
	})
}

// dictionaryCache fetches the embedded dictionary on first use. Failures are
// not cached so a later call can succeed once a token is set.
type dictionaryCache struct {
	client *api.Client
	mu     sync.Mutex
	dict   *translate.Dictionary
}

func (c *dictionaryCache) Hooks(locale string) translate.Hooks {
	dict, err := c.load(context.Background())
	if err != nil {
		if !errors.Is(err, api.ErrNoDictionaryEndpoint) {
			log.Printf("load dictionary: %v", err)
		}
		return translate.Identity{}
	}
	return dict.Translator(locale)
}

func (c *dictionaryCache) load(ctx context.Context) (*translate.Dictionary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dict != nil {
		return c.dict, nil
	}
	resp, err := c.client.FetchDictionary(ctx)
	if err != nil {
		return nil, err
	}
	c.dict = translate.NewDictionary(resp.Data)
	log.Printf("loaded dictionary: %d translations for %v", c.dict.Len(), c.dict.Locales())
	return c.dict, nil
}
