// Package sim runs the resolver against HTML pages outside a browser, so
// site authors can check gateway and switcher markup.
package sim

import (
	"errors"

	"finitefield.org/hanko-langgate/internal/lang"
	"finitefield.org/hanko-langgate/internal/resolver"
)

// ErrStorageDisabled is returned by writes when storage is disabled.
var ErrStorageDisabled = errors.New("sim: storage disabled")

// Env is an in-memory browsing context.
type Env struct {
	loc       lang.Location
	hasLoc    bool
	locale    string
	store     map[string]string
	disabled  bool
	redirects []string
}

var _ resolver.Env = (*Env)(nil)

// NewEnv returns an Env at loc with empty storage.
func NewEnv(loc lang.Location) *Env {
	return &Env{loc: loc, hasLoc: true, store: map[string]string{}}
}

// WithStored seeds the stored preference with a raw value.
func (e *Env) WithStored(v string) *Env {
	e.store[lang.StorageKey] = v
	return e
}

// WithLocale sets the browser locale.
func (e *Env) WithLocale(locale string) *Env {
	e.locale = locale
	return e
}

// DisableStorage makes every storage access fail.
func (e *Env) DisableStorage() *Env {
	e.disabled = true
	return e
}

func (e *Env) Location() (lang.Location, bool) { return e.loc, e.hasLoc }

func (e *Env) StoredPreference() (string, bool) {
	if e.disabled {
		return "", false
	}
	v, ok := e.store[lang.StorageKey]
	return v, ok
}

func (e *Env) SetStoredPreference(l lang.Language) error {
	if e.disabled {
		return ErrStorageDisabled
	}
	e.store[lang.StorageKey] = string(l)
	return nil
}

func (e *Env) BrowserLocale() (string, bool) { return e.locale, e.locale != "" }

func (e *Env) Redirect(target string) { e.redirects = append(e.redirects, target) }

// Redirects lists every redirect target in order.
func (e *Env) Redirects() []string { return e.redirects }

// Stored returns the raw stored value, or "" when storage is disabled.
func (e *Env) Stored() string {
	v, _ := e.StoredPreference()
	return v
}
