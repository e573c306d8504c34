package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every translation file from a directory of an fs.FS. Files of the
// same language are deep-merged in directory order, so later files override earlier
// keys. Files without a known extension are skipped.
type FSAdapter struct {
	fsys   fs.FS
	dir    string
	parser Parser
}

// FSAdapterOption configures an FSAdapter.
type FSAdapterOption func(*FSAdapter)

// WithParser forces a single parser for every file instead of choosing by extension.
func WithParser(p Parser) FSAdapterOption {
	return func(a *FSAdapter) {
		a.parser = p
	}
}

// NewFSAdapter reads translations from dir inside fsys. Use "." for the root.
func NewFSAdapter(fsys fs.FS, dir string, opts ...FSAdapterOption) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	a := &FSAdapter{fsys: fsys, dir: dir}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

//go:embed catalog/*.yaml
var catalogFS embed.FS

// DefaultCatalog returns an adapter for the built-in English and German catalogs.
func DefaultCatalog() *FSAdapter {
	return NewFSAdapter(catalogFS, "catalog", WithParser(NewYAMLParser()))
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrFailedToReadDir)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	result := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := a.parser
		if parser == nil {
			parser = ParserForFile(entry.Name())
		}
		if parser == nil || !parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		if err := a.loadFile(ctx, parser, name, result); err != nil {
			return nil, err
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return result, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, parser Parser, name string, into map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil
	}

	parsed, err := parser.Parse(ctx, content)
	if err != nil {
		return errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}

	for lang, trans := range parsed {
		if into[lang] == nil {
			into[lang] = make(map[string]any, len(trans))
		}
		merge(into[lang], trans)
	}
	return nil
}

// merge copies src into dst, descending into nested maps present on both sides.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}

// LayeredAdapter deep-merges several adapters. Later layers override keys of earlier
// ones, so an application catalog can patch the built-in one.
type LayeredAdapter struct {
	layers []TranslationAdapter
}

// NewLayeredAdapter stacks adapters from lowest to highest priority. Nil adapters are
// skipped.
func NewLayeredAdapter(layers ...TranslationAdapter) *LayeredAdapter {
	a := &LayeredAdapter{layers: make([]TranslationAdapter, 0, len(layers))}
	for _, l := range layers {
		if l != nil {
			a.layers = append(a.layers, l)
		}
	}
	return a
}

func (a *LayeredAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if len(a.layers) == 0 {
		return nil, ErrNilAdapter
	}

	result := make(map[string]map[string]any)
	for _, layer := range a.layers {
		data, err := layer.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, trans := range data {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(trans))
			}
			merge(result[lang], cloneMap(trans))
		}
	}
	return result, nil
}

// cloneMap copies nested maps so merging never writes into an adapter's own data.
func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = cloneMap(nested)
		}
		out[k] = v
	}
	return out
}
