package resolver

import (
	"errors"

	"finitefield.org/hanko-langgate/internal/lang"
)

var errStorageDenied = errors.New("storage denied")

type fakeEnv struct {
	loc       lang.Location
	noLoc     bool
	stored    string
	hasStored bool
	denied    bool
	locale    string
	hasLocale bool
	writes    []lang.Language
	redirects []string
}

func (e *fakeEnv) Location() (lang.Location, bool) { return e.loc, !e.noLoc }

func (e *fakeEnv) StoredPreference() (string, bool) {
	if e.denied {
		return "", false
	}
	return e.stored, e.hasStored
}

func (e *fakeEnv) SetStoredPreference(l lang.Language) error {
	if e.denied {
		return errStorageDenied
	}
	e.stored, e.hasStored = string(l), true
	e.writes = append(e.writes, l)
	return nil
}

func (e *fakeEnv) BrowserLocale() (string, bool) { return e.locale, e.hasLocale }

func (e *fakeEnv) Redirect(target string) { e.redirects = append(e.redirects, target) }

type fakeElement struct {
	attrs    map[string]string
	href     string
	active   *bool
	handlers []func()
}

func newElement(name, value string) *fakeElement {
	return &fakeElement{attrs: map[string]string{name: value}}
}

func (el *fakeElement) Attr(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

func (el *fakeElement) SetHref(href string) { el.href = href }

func (el *fakeElement) SetActive(active bool) { el.active = &active }

func (el *fakeElement) OnSelect(fn func()) { el.handlers = append(el.handlers, fn) }

func (el *fakeElement) click() {
	for _, fn := range el.handlers {
		fn()
	}
}

type fakeDoc struct {
	gateway  bool
	switches []*fakeElement
	setters  []*fakeElement
	hasHint  bool
	hint     string
}

func (d *fakeDoc) IsGateway() bool { return d.gateway }

func (d *fakeDoc) SwitchLinks() []Element {
	out := make([]Element, 0, len(d.switches))
	for _, el := range d.switches {
		out = append(out, el)
	}
	return out
}

func (d *fakeDoc) Setters() []Element {
	out := make([]Element, 0, len(d.setters))
	for _, el := range d.setters {
		out = append(out, el)
	}
	return out
}

func (d *fakeDoc) SetHint(text string) bool {
	if !d.hasHint {
		return false
	}
	d.hint = text
	return true
}

func at(path, query, fragment string) lang.Location {
	return lang.Location{Path: path, RawQuery: query, Fragment: fragment}
}
