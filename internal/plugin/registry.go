// Package plugin is the host's capability registry. The host builds one
// Registry at startup and passes it to every feature that installs into it.
package plugin

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/DictPanel/internal/translate"
)

var (
	ErrAlreadyInstalled = errors.New("content translation already installed")
	ErrNotInstalled     = errors.New("content translation is not installed")
)

// ContentTranslation is the set of capabilities the content-translation
// feature provides to the host.
type ContentTranslation struct {
	Enabled bool

	// NewConfigurationPanel builds the admin settings panel.
	NewConfigurationPanel func() tea.Model

	// Hooks returns the data transformations for a viewer locale.
	Hooks func(locale string) translate.Hooks

	// SetEndpointsForStaticEmbedding fixes the dictionary URL from an
	// embedding token.
	SetEndpointsForStaticEmbedding func(token string) error
}

func defaultContentTranslation() ContentTranslation {
	return ContentTranslation{
		Enabled:               false,
		NewConfigurationPanel: func() tea.Model { return nil },
		Hooks:                 func(string) translate.Hooks { return translate.Identity{} },
		SetEndpointsForStaticEmbedding: func(string) error {
			return ErrNotInstalled
		},
	}
}

// Registry holds the installed capabilities
type Registry struct {
	mu                 sync.RWMutex
	contentTranslation ContentTranslation
	installed          bool
}

// NewRegistry creates a registry with every capability at its default.
func NewRegistry() *Registry {
	return &Registry{
		contentTranslation: defaultContentTranslation(),
	}
}

// InstallContentTranslation installs the feature. Missing functions keep
// their defaults. It can only be called once.
func (r *Registry) InstallContentTranslation(ct ContentTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.installed {
		return ErrAlreadyInstalled
	}

	defaults := defaultContentTranslation()
	if ct.NewConfigurationPanel == nil {
		ct.NewConfigurationPanel = defaults.NewConfigurationPanel
	}
	if ct.Hooks == nil {
		ct.Hooks = defaults.Hooks
	}
	if ct.SetEndpointsForStaticEmbedding == nil {
		ct.SetEndpointsForStaticEmbedding = defaults.SetEndpointsForStaticEmbedding
	}
	r.contentTranslation = ct
	r.installed = true
	return nil
}

// ContentTranslation returns the installed capabilities, or the defaults.
func (r *Registry) ContentTranslation() ContentTranslation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contentTranslation
}
