// Package i18n holds the localized message catalog used by every analysis
// and report. A Locale only selects templates; it never changes thresholds
// or any other analysis decision.
package i18n

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// Locale is one of the supported output languages.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt"
	Spanish    Locale = "es"
)

// Default is used whenever a requested language is not supported.
const Default = English

var supported = []Locale{English, Portuguese, Spanish}

// The matcher order must mirror supported: Match returns an index into it.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Portuguese,
	language.Spanish,
})

// Supported returns the supported locales, default first.
func Supported() []Locale {
	return append([]Locale(nil), supported...)
}

func (l Locale) String() string { return string(l) }

// IsValid reports whether l is one of the supported locales.
func (l Locale) IsValid() bool {
	for _, s := range supported {
		if l == s {
			return true
		}
	}
	return false
}

// Parse negotiates a BCP 47 tag ("pt", "pt-BR", "es_AR", "EN") against the
// supported locales and falls back to Default for anything else.
func Parse(s string) Locale {
	loc, _ := Match(s)
	return loc
}

// Match is Parse that also reports whether s matched a supported locale.
func Match(s string) (Locale, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return Default, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return Default, false
	}
	// The matcher maps some unsupported languages onto a regional neighbour
	// (gl to es); only accept matches on the same base language.
	want, _ := tag.Base()
	got, _ := language.Make(string(supported[idx])).Base()
	if want != got {
		return Default, false
	}
	return supported[idx], true
}

// Args is the named-argument record available to every template.
// Templates reference only the fields they need.
type Args struct {
	Count       int
	Days        int
	Percent     int
	TimePercent int
	Duration    int
	Level       int
	Total       int
	Tasks       int
	Activities  int
	Delayed     int
	Missing     int
	Score       float64
	Name        string
}

var compiled = mustCompile(catalog)

func mustCompile(c map[Locale]map[Message]string) map[Locale]map[Message]*template.Template {
	out := make(map[Locale]map[Message]*template.Template, len(c))
	for loc, msgs := range c {
		out[loc] = make(map[Message]*template.Template, len(msgs))
		for id, text := range msgs {
			name := fmt.Sprintf("%s.%s", loc, id)
			out[loc][id] = template.Must(template.New(name).Option("missingkey=error").Parse(text))
		}
	}
	return out
}

// Render formats message id for loc with args. Unsupported locales use
// Default, and a message missing from a locale falls back to Default's text.
func Render(loc Locale, id Message, args Args) string {
	tmpl := lookup(loc, id)
	if tmpl == nil {
		return string(id)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, args); err != nil {
		return string(id)
	}
	return sb.String()
}

// Text renders a message that takes no arguments.
func Text(loc Locale, id Message) string {
	return Render(loc, id, Args{})
}

func lookup(loc Locale, id Message) *template.Template {
	if msgs, ok := compiled[loc]; ok {
		if t, ok := msgs[id]; ok {
			return t
		}
	}
	return compiled[Default][id]
}
