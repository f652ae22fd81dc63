package metadata

import (
	"sort"
	"strings"
)

// Text is a character string property. It is implemented by PlainText,
// BilingualText and AnchorText only.
type Text interface {
	// String returns the primary value
	String() string
	isText()
}

// PlainText is a single-language character string.
type PlainText struct {
	Value string
}

// BilingualText is a character string with language-tagged alternates
// keyed by three-letter language code ("eng", "nor").
type BilingualText struct {
	Value      string
	Alternates map[string]string
}

// AnchorText is a character string that links to a resource, with optional
// language-tagged alternates.
type AnchorText struct {
	Value      string
	Href       string
	Alternates map[string]string
}

func (t PlainText) String() string     { return t.Value }
func (t BilingualText) String() string { return t.Value }
func (t AnchorText) String() string    { return t.Value }

func (PlainText) isText()     {}
func (BilingualText) isText() {}
func (AnchorText) isText()    {}

// Plain returns a PlainText, or nil for an empty string.
func Plain(value string) Text {
	if value == "" {
		return nil
	}
	return PlainText{Value: value}
}

// Primary returns the primary value of t, or "" if t is nil.
func Primary(t Text) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// Href returns the link of an AnchorText, or "".
func Href(t Text) string {
	if a, ok := t.(AnchorText); ok {
		return a.Href
	}
	return ""
}

// Alternate returns the alternate value for lang. The second result is false
// when t has no alternate for that language.
func Alternate(t Text, lang string) (string, bool) {
	alternates := alternatesOf(t)
	if alternates == nil {
		return "", false
	}
	v, ok := alternates[strings.ToLower(lang)]
	return v, ok
}

// IsBilingual reports whether t already carries an alternates structure.
func IsBilingual(t Text) bool {
	switch v := t.(type) {
	case BilingualText:
		return true
	case AnchorText:
		return v.Alternates != nil
	default:
		return false
	}
}

// IsEmpty reports whether t carries no primary value, link or alternate.
func IsEmpty(t Text) bool {
	switch v := t.(type) {
	case nil:
		return true
	case PlainText:
		return v.Value == ""
	case BilingualText:
		return v.Value == "" && len(v.Alternates) == 0
	case AnchorText:
		return v.Value == "" && v.Href == "" && len(v.Alternates) == 0
	default:
		return true
	}
}

// WithPrimary returns a copy of t with the primary value replaced. The
// variant, link and alternates of t are kept.
func WithPrimary(t Text, value string) Text {
	switch v := t.(type) {
	case BilingualText:
		return BilingualText{Value: value, Alternates: copyAlternates(v.Alternates)}
	case AnchorText:
		return AnchorText{Value: value, Href: v.Href, Alternates: copyAlternates(v.Alternates)}
	default:
		return PlainText{Value: value}
	}
}

// WithAlternate returns a copy of t with the alternate for lang set to value.
// A PlainText (or nil) becomes a BilingualText with the same primary value.
func WithAlternate(t Text, lang, value string) Text {
	lang = strings.ToLower(lang)
	switch v := t.(type) {
	case AnchorText:
		alternates := copyAlternates(v.Alternates)
		if alternates == nil {
			alternates = make(map[string]string)
		}
		alternates[lang] = value
		return AnchorText{Value: v.Value, Href: v.Href, Alternates: alternates}
	default:
		alternates := copyAlternates(alternatesOf(t))
		if alternates == nil {
			alternates = make(map[string]string)
		}
		alternates[lang] = value
		return BilingualText{Value: Primary(t), Alternates: alternates}
	}
}

// WithHref returns t as an AnchorText linking to href, keeping its primary
// value and alternates. An empty href turns an AnchorText back into plain or
// bilingual text.
func WithHref(t Text, href string) Text {
	alternates := copyAlternates(alternatesOf(t))
	if href == "" {
		if alternates != nil {
			return BilingualText{Value: Primary(t), Alternates: alternates}
		}
		return PlainText{Value: Primary(t)}
	}
	return AnchorText{Value: Primary(t), Href: href, Alternates: alternates}
}

// languages returns the alternate language keys of t in sorted order.
func languages(alternates map[string]string) []string {
	keys := make([]string, 0, len(alternates))
	for k := range alternates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func alternatesOf(t Text) map[string]string {
	switch v := t.(type) {
	case BilingualText:
		return v.Alternates
	case AnchorText:
		return v.Alternates
	default:
		return nil
	}
}

func copyAlternates(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// LocaleID returns the PT_Locale identifier for a language code ("eng" -> "ENG").
func LocaleID(lang string) string {
	return strings.ToUpper(lang)
}

// localeLanguage converts a locale reference ("#ENG") to a language code ("eng").
func localeLanguage(ref string) string {
	return strings.ToLower(strings.TrimPrefix(ref, "#"))
}
