package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/DictPanel/internal/api"
)

func testDictionary() *Dictionary {
	return NewDictionary([]api.DictionaryEntry{
		{Locale: "de", MsgID: "Revenue", MsgStr: "Umsatz"},
		{Locale: "de", MsgID: "Orders", MsgStr: "Bestellungen"},
		{Locale: "de", MsgID: "Apple", MsgStr: "Zitrone"},
		{Locale: "de", MsgID: "Banana", MsgStr: "Ähre"},
		{Locale: "de", MsgID: "Empty", MsgStr: ""},
		{Locale: "fr", MsgID: "Revenue", MsgStr: "Chiffre d'affaires"},
		{Locale: "not a locale", MsgID: "Revenue", MsgStr: "x"},
		{Locale: "fr", MsgID: "", MsgStr: "ignored"},
	})
}

func TestNewDictionary(t *testing.T) {
	d := testDictionary()
	assert.Equal(t, []string{"de", "fr"}, d.Locales())
	assert.Equal(t, 6, d.Len())
}

func TestTranslatorMatchesRegionalLocale(t *testing.T) {
	tr := testDictionary().Translator("de-CH")
	assert.Equal(t, "de", tr.Locale().String())
	assert.Equal(t, "Umsatz", tr.TranslateContent("Revenue"))
}

func TestTranslateContent(t *testing.T) {
	tr := testDictionary().Translator("de")

	assert.Equal(t, "Umsatz", tr.TranslateContent("Revenue"))
	assert.Equal(t, "Umsatz", tr.TranslateContent("  Revenue "))
	assert.Equal(t, "Profit", tr.TranslateContent("Profit"))
	// an empty translation is not a translation
	assert.Equal(t, "Empty", tr.TranslateContent("Empty"))
	assert.Equal(t, "", tr.TranslateContent(""))
}

func TestTranslatorWithoutMatchIsIdentity(t *testing.T) {
	d := testDictionary()
	assert.Equal(t, "Revenue", d.Translator("ja").TranslateContent("Revenue"))
	assert.Equal(t, "Revenue", d.Translator("???").TranslateContent("Revenue"))
	assert.Equal(t, "Revenue", NewDictionary(nil).Translator("de").TranslateContent("Revenue"))
}

func TestTranslateDisplayNames(t *testing.T) {
	tr := testDictionary().Translator("de")
	in := []Column{{Name: "REVENUE", DisplayName: "Revenue"}, {Name: "ID", DisplayName: "ID"}}

	out := tr.TranslateDisplayNames(in)
	assert.Equal(t, []Column{{Name: "REVENUE", DisplayName: "Umsatz"}, {Name: "ID", DisplayName: "ID"}}, out)
	assert.Equal(t, "Revenue", in[0].DisplayName, "input must not be modified")
}

func TestSortByContentTranslation(t *testing.T) {
	tr := testDictionary().Translator("de")
	values := []string{"Apple", "Orders", "Banana"}

	tr.SortByContentTranslation(values)
	// Ähre < Bestellungen < Zitrone under German collation
	assert.Equal(t, []string{"Banana", "Orders", "Apple"}, values)
}

func TestTranslateSeries(t *testing.T) {
	tr := testDictionary().Translator("fr")
	out := tr.TranslateSeries([]Series{{Key: "sum", Name: "Revenue"}})
	assert.Equal(t, []Series{{Key: "sum", Name: "Chiffre d'affaires"}}, out)
}

func TestTranslateFieldValues(t *testing.T) {
	tr := testDictionary().Translator("de")
	out := tr.TranslateFieldValues(map[string]any{"category": "Orders", "count": 3})
	assert.Equal(t, map[string]any{"category": "Bestellungen", "count": 3}, out)
}

func TestIdentity(t *testing.T) {
	var hooks Hooks = Identity{}

	assert.Equal(t, "Revenue", hooks.TranslateContent("Revenue"))
	assert.Equal(t, []Column{{DisplayName: "a"}}, hooks.TranslateDisplayNames([]Column{{DisplayName: "a"}}))
	assert.Equal(t, []Series{{Name: "a"}}, hooks.TranslateSeries([]Series{{Name: "a"}}))
	assert.Equal(t, map[string]any{"a": 1}, hooks.TranslateFieldValues(map[string]any{"a": 1}))

	values := []string{"b", "a"}
	hooks.SortByContentTranslation(values)
	require.Equal(t, []string{"a", "b"}, values)
}
