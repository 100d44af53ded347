//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"

	"finitefield.org/hanko-langgate/internal/lang"
)

// env reads the browsing context through the JS global object. Any JS
// exception while reading is treated as an absent value.
type env struct {
	window js.Value
}

func newEnv() *env { return &env{window: js.Global()} }

func (e *env) Location() (loc lang.Location, ok bool) {
	defer recoverAbsent(&ok)
	l := e.window.Get("location")
	if !isObject(l) {
		return lang.Location{}, false
	}
	loc = lang.Location{
		Path:     stringOr(l.Get("pathname"), "/"),
		RawQuery: trimLead(stringOr(l.Get("search"), ""), '?'),
		Fragment: trimLead(stringOr(l.Get("hash"), ""), '#'),
	}
	return loc, true
}

func (e *env) StoredPreference() (v string, ok bool) {
	defer recoverAbsent(&ok)
	storage := e.window.Get("localStorage")
	if !isObject(storage) {
		return "", false
	}
	item := storage.Call("getItem", lang.StorageKey)
	if item.Type() != js.TypeString {
		return "", false
	}
	return item.String(), true
}

func (e *env) SetStoredPreference(l lang.Language) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.setItem: %v", r)
		}
	}()
	storage := e.window.Get("localStorage")
	if !isObject(storage) {
		return fmt.Errorf("localStorage unavailable")
	}
	storage.Call("setItem", lang.StorageKey, string(l))
	return nil
}

func (e *env) BrowserLocale() (v string, ok bool) {
	defer recoverAbsent(&ok)
	nav := e.window.Get("navigator")
	if !isObject(nav) {
		return "", false
	}
	for _, prop := range []string{"language", "userLanguage"} {
		if s := stringOr(nav.Get(prop), ""); s != "" {
			return s, true
		}
	}
	return "", false
}

func (e *env) Redirect(target string) {
	defer func() { _ = recover() }()
	e.window.Get("location").Call("replace", target)
}

func recoverAbsent(ok *bool) {
	if r := recover(); r != nil {
		*ok = false
	}
}

// ignorePanic swallows a JS exception raised by a DOM write.
func ignorePanic() { _ = recover() }

func isObject(v js.Value) bool { return v.Type() == js.TypeObject }

func stringOr(v js.Value, fallback string) string {
	if v.Type() != js.TypeString {
		return fallback
	}
	return v.String()
}

func trimLead(s string, c byte) string {
	if len(s) > 0 && s[0] == c {
		return s[1:]
	}
	return s
}
