// Package i18n holds the panel's message catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale; every other catalog falls back to it.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedFS embed.FS

// PluralForms holds the CLDR forms used by the panel. Only one/other are
// needed for the languages shipped.
type PluralForms struct {
	One   string `yaml:"one"`
	Other string `yaml:"other"`
}

type catalogFile struct {
	Locale   string                 `yaml:"locale"`
	Messages map[string]string      `yaml:"messages"`
	Plurals  map[string]PluralForms `yaml:"plurals"`
}

// Bundle contains every loaded locale.
type Bundle struct {
	tags     []language.Tag
	files    map[language.Tag]*catalogFile
	matcher  language.Matcher
	messages *catalog.Builder
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// MustLoadEmbedded is LoadEmbedded for package-level setup and tests.
func MustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFromFS loads locales/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	files := make(map[language.Tag]*catalogFile, len(paths))
	var base *catalogFile
	var baseTag language.Tag
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		want := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if strings.TrimSpace(file.Locale) != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, file.Locale, want)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale: %w", p, err)
		}
		if _, dup := files[tag]; dup {
			return nil, fmt.Errorf("catalog %s: locale %s defined twice", p, tag)
		}
		files[tag] = &file
		if file.Locale == BaseLocale {
			base, baseTag = &file, tag
		}
	}
	if base == nil {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The base tag goes first so that it is the matcher's default.
	tags := []language.Tag{baseTag}
	for tag := range files {
		if tag != baseTag {
			tags = append(tags, tag)
		}
	}
	rest := tags[1:]
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	builder := catalog.NewBuilder()
	for _, tag := range tags {
		file := files[tag]
		fillFromBase(file, base)
		for key, msg := range file.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", tag, key, err)
			}
		}
	}

	return &Bundle{
		tags:     tags,
		files:    files,
		matcher:  language.NewMatcher(tags),
		messages: builder,
	}, nil
}

func fillFromBase(file, base *catalogFile) {
	if file.Messages == nil {
		file.Messages = map[string]string{}
	}
	if file.Plurals == nil {
		file.Plurals = map[string]PluralForms{}
	}
	for key, msg := range base.Messages {
		if _, ok := file.Messages[key]; !ok {
			file.Messages[key] = msg
		}
	}
	for key, forms := range base.Plurals {
		if _, ok := file.Plurals[key]; !ok {
			file.Plurals[key] = forms
		}
	}
}

// Locales returns the loaded locales, base first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.tags))
	for i, tag := range b.tags {
		out[i] = tag.String()
	}
	return out
}

// Localizer returns a localizer for the closest loaded locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	tag := b.tags[0]
	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, index, confidence := b.matcher.Match(requested)
		if confidence != language.No {
			tag = b.tags[index]
		}
	}
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.messages)),
		plurals: b.files[tag].Plurals,
	}
}

// Localizer formats messages for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
	plurals map[string]PluralForms
}

// Tag returns the locale the localizer resolved to.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T formats the message registered under key. Unknown keys are returned as-is.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// N returns the plural form of key that matches n.
func (l *Localizer) N(key string, n int) string {
	forms, ok := l.plurals[key]
	if !ok {
		return key
	}
	if plural.Cardinal.MatchPlural(l.tag, n, 0, 0, 0, 0) == plural.One {
		return forms.One
	}
	return forms.Other
}
