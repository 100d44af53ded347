// Package lang models the two languages the site is published in and the
// URL conventions that encode them.
package lang

import (
	"net/url"
	"strings"
)

// Language is one of the supported site languages.
type Language string

const (
	Japanese Language = "ja"
	English  Language = "en"
)

const (
	// QueryParam is the query parameter carrying an explicit language choice.
	QueryParam = "lang"
	// StorageKey is the browser storage key holding the stored preference.
	StorageKey = "lang"
)

// Supported lists the site languages in display order.
func Supported() []Language { return []Language{Japanese, English} }

// Parse reports whether s names a supported language, ignoring case.
// Surrounding whitespace makes the value unrecognised.
func Parse(s string) (Language, bool) {
	switch l := Language(strings.ToLower(s)); l {
	case Japanese, English:
		return l, true
	}
	return "", false
}

// Root returns the localized root path, e.g. "/ja/". It doubles as the
// path segment that marks a localized page.
func (l Language) Root() string { return "/" + string(l) + "/" }

// Location is the part of a page URL the resolver works with. RawQuery and
// Fragment exclude their leading '?' and '#'.
type Location struct {
	Path     string
	RawQuery string
	Fragment string
}

// ParseLocation splits a URL or path reference into a Location.
func ParseLocation(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, err
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return Location{Path: path, RawQuery: u.RawQuery, Fragment: u.EscapedFragment()}, nil
}

// Search returns the query string with its leading '?', or "".
func (l Location) Search() string {
	if l.RawQuery == "" {
		return ""
	}
	return "?" + l.RawQuery
}

// Hash returns the fragment with its leading '#', or "".
func (l Location) Hash() string {
	if l.Fragment == "" {
		return ""
	}
	return "#" + l.Fragment
}

// FromPath returns the language encoded by the first "/ja/" or "/en/"
// segment in path.
func FromPath(path string) (Language, bool) {
	best, found := -1, Language("")
	for _, l := range Supported() {
		if i := strings.Index(path, l.Root()); i >= 0 && (best < 0 || i < best) {
			best, found = i, l
		}
	}
	return found, best >= 0
}

// SwapPath returns the equivalent of path in target. Paths without a
// language segment map to the target root.
func SwapPath(path string, target Language) string {
	current, ok := FromPath(path)
	if !ok {
		return target.Root()
	}
	return strings.Replace(path, current.Root(), target.Root(), 1)
}

// FromQuery returns the language named by the first lang query parameter.
func FromQuery(rawQuery string) (Language, bool) {
	for _, part := range querySegments(rawQuery) {
		key, value, _ := strings.Cut(part, "=")
		if decode(key) != QueryParam {
			continue
		}
		return Parse(decode(value))
	}
	return "", false
}

// StripQuery removes every lang parameter from rawQuery and returns the
// remainder prefixed with '?', or "" when nothing is left. The remaining
// parameters keep their original order and encoding.
func StripQuery(rawQuery string) string {
	parts := querySegments(rawQuery)
	kept := parts[:0]
	for _, part := range parts {
		key, _, _ := strings.Cut(part, "=")
		if decode(key) == QueryParam {
			continue
		}
		kept = append(kept, part)
	}
	if len(kept) == 0 {
		return ""
	}
	return "?" + strings.Join(kept, "&")
}

func querySegments(rawQuery string) []string {
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	var out []string
	for _, part := range strings.Split(rawQuery, "&") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// decode form-decodes s; malformed escapes are kept literally.
func decode(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	return s
}
