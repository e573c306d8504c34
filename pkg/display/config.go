package display

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrymomot/displayfmt/pkg/config"
	"github.com/dmitrymomot/displayfmt/pkg/i18n"
	"github.com/dmitrymomot/displayfmt/pkg/list"
	"github.com/dmitrymomot/displayfmt/pkg/locale"
)

// EnvPrefix is prepended to every Config variable.
const EnvPrefix = "DISPLAY_"

// Config describes a Formatter through environment variables. Nil pointer fields keep
// the catalog defaults.
type Config struct {
	Locale               string  `env:"LOCALE" envDefault:"en"`
	TimeZone             string  `env:"TIME_ZONE" envDefault:"UTC"`
	ListSeparator        *string `env:"LIST_SEPARATOR"`
	ListLastSeparator    *string `env:"LIST_LAST_SEPARATOR"`
	ListLimit            int     `env:"LIST_LIMIT" envDefault:"3"`
	OverflowTemplate     *string `env:"OVERFLOW_TEMPLATE"`
	Placeholder          *string `env:"PLACEHOLDER"`
	DateLayout           string  `env:"DATE_LAYOUT" envDefault:"2006-01-02"`
	AbbreviatedDurations bool    `env:"ABBREVIATED_DURATIONS" envDefault:"false"`
	ObfuscateEmails      bool    `env:"OBFUSCATE_EMAILS" envDefault:"false"`
	TranslationsDir      string  `env:"TRANSLATIONS_DIR"`
	CacheSize            int     `env:"CACHE_SIZE" envDefault:"16"`
}

// LoadConfig reads Config from DISPLAY_* variables and the optional .env file.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a localized Formatter. Translations from cfg.TranslationsDir are
// layered over the built-in catalog. Options are applied after the configuration, so
// they take precedence.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Formatter, error) {
	loc, err := cfg.location()
	if err != nil {
		return nil, err
	}
	tr, err := cfg.translator(ctx)
	if err != nil {
		return nil, err
	}
	return cfg.formatter(tr, loc, cfg.Locale, opts), nil
}

func (cfg Config) location() (*time.Location, error) {
	if cfg.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimeZone, err)
	}
	return loc, nil
}

func (cfg Config) translator(ctx context.Context) (*i18n.Translator, error) {
	adapter := i18n.TranslationAdapter(i18n.DefaultCatalog())
	if cfg.TranslationsDir != "" {
		adapter = i18n.NewLayeredAdapter(adapter, i18n.NewFSAdapter(os.DirFS(cfg.TranslationsDir), "."))
	}

	tr, err := i18n.NewTranslator(ctx, adapter)
	if err != nil {
		return nil, errors.Join(ErrLoadingCatalog, fmt.Errorf("translations dir %q: %w", cfg.TranslationsDir, err))
	}
	return tr, nil
}

// formatter binds the configuration to lang.
func (cfg Config) formatter(tr *i18n.Translator, loc *time.Location, lang string, opts []Option) *Formatter {
	localizer := tr.Localizer(lang)
	dates := locale.NewDates(locale.WithLocation(loc), locale.WithTranslator(localizer))

	base := []Option{
		WithLocalizer(localizer),
		WithNumberFormatter(locale.NewNumbers(locale.Tag(lang))),
		WithDateFormatter(dates),
		WithDateParser(dates),
		WithDateLayout(cfg.DateLayout),
		WithAbbreviatedDurations(cfg.AbbreviatedDurations),
		WithEmailObfuscation(cfg.ObfuscateEmails),
		WithListOptions(cfg.listOptions()...),
	}
	if cfg.Placeholder != nil {
		base = append(base, WithPlaceholder(*cfg.Placeholder))
	}

	return New(append(base, opts...)...)
}

func (cfg Config) listOptions() []list.Option {
	var opts []list.Option
	if cfg.ListSeparator != nil {
		opts = append(opts, list.WithSeparator(*cfg.ListSeparator))
	}
	if cfg.ListLastSeparator != nil {
		opts = append(opts, list.WithLastSeparator(*cfg.ListLastSeparator))
	}
	if cfg.ListLimit > 0 {
		opts = append(opts, list.WithLimit(cfg.ListLimit))
	}
	if cfg.OverflowTemplate != nil {
		opts = append(opts, list.WithOverflowTemplate(*cfg.OverflowTemplate))
	}
	return opts
}
