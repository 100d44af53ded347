package resolver

import "finitefield.org/hanko-langgate/internal/lang"

// Env is the browsing context the resolver reads from and acts on. Reads
// report ok=false when the host cannot provide a value.
type Env interface {
	Location() (lang.Location, bool)
	StoredPreference() (string, bool)
	SetStoredPreference(lang.Language) error
	BrowserLocale() (string, bool)
	// Redirect replaces the current history entry with target.
	Redirect(target string)
}

// Document is the page the resolver decorates.
type Document interface {
	// IsGateway reports whether the page is marked as the language gateway.
	IsGateway() bool
	SwitchLinks() []Element
	Setters() []Element
	// SetHint sets the recommendation text and reports whether a hint
	// element exists.
	SetHint(text string) bool
}

// Element is a tagged element in the page.
type Element interface {
	Attr(name string) (string, bool)
	SetHref(href string)
	SetActive(active bool)
	// OnSelect registers fn to run when the user activates the element,
	// before any navigation it triggers.
	OnSelect(fn func())
}

// DOM contract.
const (
	GatewayAttr  = "data-page"
	GatewayValue = "lang-gateway"
	SwitchAttr   = "data-lang-link"
	SetterAttr   = "data-set-lang"
	HintAttr     = "data-lang-hint"
	ActiveClass  = "is-active"
)
