package translate

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Rorical/DictPanel/internal/api"
)

// Column is a result column as shown in a table or chart axis.
type Column struct {
	Name        string
	DisplayName string
}

// Series is one chart series.
type Series struct {
	Key  string
	Name string
}

// Hooks is the set of data transformations the content-translation feature
// installs into the host.
type Hooks interface {
	TranslateContent(s string) string
	TranslateDisplayNames(columns []Column) []Column
	SortByContentTranslation(values []string)
	TranslateSeries(series []Series) []Series
	TranslateFieldValues(values map[string]any) map[string]any
}

// Dictionary maps locale -> source string -> translation.
type Dictionary struct {
	entries map[language.Tag]map[string]string
	tags    []language.Tag
	matcher language.Matcher
}

// NewDictionary builds a dictionary from served entries. Rows with an
// unparseable locale or an empty msgid are skipped; later rows win.
func NewDictionary(entries []api.DictionaryEntry) *Dictionary {
	d := &Dictionary{entries: map[language.Tag]map[string]string{}}
	for _, e := range entries {
		tag, err := language.Parse(strings.TrimSpace(e.Locale))
		if err != nil || e.MsgID == "" {
			continue
		}
		m, ok := d.entries[tag]
		if !ok {
			m = map[string]string{}
			d.entries[tag] = m
			d.tags = append(d.tags, tag)
		}
		m[e.MsgID] = e.MsgStr
	}
	sort.Slice(d.tags, func(i, j int) bool { return d.tags[i].String() < d.tags[j].String() })
	if len(d.tags) > 0 {
		d.matcher = language.NewMatcher(d.tags)
	}
	return d
}

// Locales returns the locales present in the dictionary.
func (d *Dictionary) Locales() []string {
	out := make([]string, len(d.tags))
	for i, tag := range d.tags {
		out[i] = tag.String()
	}
	return out
}

// Len returns the number of translations across all locales.
func (d *Dictionary) Len() int {
	n := 0
	for _, m := range d.entries {
		n += len(m)
	}
	return n
}

// Translator returns the hooks for the dictionary locale closest to locale.
// A locale with no match gets a translator that changes nothing.
func (d *Dictionary) Translator(locale string) *Translator {
	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		requested = language.Und
	}
	t := &Translator{tag: requested}
	if d.matcher == nil || err != nil {
		return t
	}
	_, index, confidence := d.matcher.Match(requested)
	if confidence == language.No {
		return t
	}
	t.tag = d.tags[index]
	t.strings = d.entries[t.tag]
	return t
}

// Translator applies one locale's translations.
type Translator struct {
	tag     language.Tag
	strings map[string]string
}

var _ Hooks = (*Translator)(nil)

// Locale returns the dictionary locale in use.
func (t *Translator) Locale() language.Tag {
	return t.tag
}

// TranslateContent returns the translation of s, or s when there is none.
func (t *Translator) TranslateContent(s string) string {
	if msg, ok := t.lookup(s); ok {
		return msg
	}
	return s
}

func (t *Translator) lookup(s string) (string, bool) {
	if len(t.strings) == 0 || s == "" {
		return "", false
	}
	if msg, ok := t.strings[s]; ok && msg != "" {
		return msg, true
	}
	if trimmed := strings.TrimSpace(s); trimmed != s {
		if msg, ok := t.strings[trimmed]; ok && msg != "" {
			return msg, true
		}
	}
	return "", false
}

// TranslateDisplayNames returns a copy of columns with translated display names.
func (t *Translator) TranslateDisplayNames(columns []Column) []Column {
	out := make([]Column, len(columns))
	for i, c := range columns {
		c.DisplayName = t.TranslateContent(c.DisplayName)
		out[i] = c
	}
	return out
}

// SortByContentTranslation sorts values in place by their translated form,
// using the collation rules of the translator's locale.
func (t *Translator) SortByContentTranslation(values []string) {
	c := collate.New(t.tag)
	translated := make(map[string]string, len(values))
	for _, v := range values {
		translated[v] = t.TranslateContent(v)
	}
	sort.SliceStable(values, func(i, j int) bool {
		return c.CompareString(translated[values[i]], translated[values[j]]) < 0
	})
}

// TranslateSeries returns a copy of series with translated names.
func (t *Translator) TranslateSeries(series []Series) []Series {
	out := make([]Series, len(series))
	for i, s := range series {
		s.Name = t.TranslateContent(s.Name)
		out[i] = s
	}
	return out
}

// TranslateFieldValues returns a copy of a hovered object with its string
// values translated. Non-string values are kept.
func (t *Translator) TranslateFieldValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if s, ok := v.(string); ok {
			out[k] = t.TranslateContent(s)
			continue
		}
		out[k] = v
	}
	return out
}

// Identity is the hook set used while content translation is disabled.
type Identity struct{}

var _ Hooks = Identity{}

func (Identity) TranslateContent(s string) string { return s }

func (Identity) TranslateDisplayNames(columns []Column) []Column {
	return append([]Column(nil), columns...)
}

func (Identity) SortByContentTranslation(values []string) {
	sort.Strings(values)
}

func (Identity) TranslateSeries(series []Series) []Series {
	return append([]Series(nil), series...)
}

func (Identity) TranslateFieldValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
