package display

import (
	"context"
	"time"

	"github.com/dmitrymomot/displayfmt/pkg/cache"
	"github.com/dmitrymomot/displayfmt/pkg/i18n"
	"github.com/dmitrymomot/displayfmt/pkg/locale"
)

// Registry hands out one Formatter per locale, sharing a single translation catalog.
// Formatters are built on first use and kept in an LRU cache of Config.CacheSize entries.
type Registry struct {
	cfg        Config
	location   *time.Location
	translator *i18n.Translator
	opts       []Option
	formatters *cache.LRU[string, *Formatter]
}

// NewRegistry loads the catalog described by cfg once. opts are applied to every
// Formatter the registry builds.
func NewRegistry(ctx context.Context, cfg Config, opts ...Option) (*Registry, error) {
	loc, err := cfg.location()
	if err != nil {
		return nil, err
	}
	tr, err := cfg.translator(ctx)
	if err != nil {
		return nil, err
	}

	return &Registry{
		cfg:        cfg,
		location:   loc,
		translator: tr,
		opts:       opts,
		formatters: cache.New[string, *Formatter](max(cfg.CacheSize, 1)),
	}, nil
}

// For returns the Formatter for lang. Empty or invalid codes use Config.Locale.
func (r *Registry) For(lang string) *Formatter {
	if lang == "" {
		lang = r.cfg.Locale
	}
	key := locale.Tag(lang).String()

	f, _ := r.formatters.GetOrLoad(key, func() (*Formatter, error) {
		return r.cfg.formatter(r.translator, r.location, key, r.opts), nil
	})
	return f
}

// FromContext returns the Formatter for the locale stored with i18n.SetLocale.
func (r *Registry) FromContext(ctx context.Context) *Formatter {
	return r.For(i18n.GetLocale(ctx))
}

// Languages lists the languages of the loaded catalog.
func (r *Registry) Languages() []string {
	return r.translator.Languages()
}

// Reload rereads the translation catalog and drops the cached formatters.
func (r *Registry) Reload(ctx context.Context) error {
	if err := r.translator.Reload(ctx); err != nil {
		return err
	}
	r.formatters.Clear()
	return nil
}
