package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into translations keyed by language.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext, with or without the
	// leading dot.
	SupportsFileExtension(ext string) bool
}

// YAMLParser reads .yaml and .yml catalogs with one top-level key per language.
type YAMLParser struct{ fileParser }

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{fileParser{
		extensions: []string{"yaml", "yml"},
		unmarshal:  yaml.Unmarshal,
		cancelled:  ErrYAMLParsingCancelled,
		invalid:    ErrFailedToParseYAML,
	}}
}

// JSONParser reads .json catalogs with one top-level key per language.
type JSONParser struct{ fileParser }

func NewJSONParser() *JSONParser {
	return &JSONParser{fileParser{
		extensions: []string{"json"},
		unmarshal:  json.Unmarshal,
		cancelled:  ErrJSONParsingCancelled,
		invalid:    ErrFailedToParseJSON,
	}}
}

// ParserForFile returns the parser matching the file extension, or nil.
func ParserForFile(filename string) Parser {
	ext := path.Ext(filename)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

type fileParser struct {
	extensions []string
	unmarshal  func([]byte, any) error
	cancelled  error
	invalid    error
}

func (p fileParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(p.cancelled, err)
	}

	var data map[string]any
	if err := p.unmarshal(content, &data); err != nil {
		return nil, errors.Join(p.invalid, err)
	}
	return byLanguage(data)
}

func (p fileParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return slices.ContainsFunc(p.extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// byLanguage checks that every top-level entry is a map of translations.
func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		trans, ok := normalize(val).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = trans
	}
	return result, nil
}

// normalize converts map[any]any values produced by some decoders into map[string]any.
func normalize(v any) any {
	switch m := v.(type) {
	case map[string]any:
		for k, child := range m {
			m[k] = normalize(child)
		}
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, child := range m {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	default:
		return v
	}
}
