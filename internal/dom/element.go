package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"finitefield.org/hanko-langgate/internal/resolver"
)

// Element is a single tagged node.
type Element struct {
	sel      *goquery.Selection
	handlers []func()
}

var _ resolver.Element = (*Element)(nil)

func (e *Element) Attr(name string) (string, bool) { return e.sel.Attr(name) }

func (e *Element) SetHref(href string) { e.sel.SetAttr("href", href) }

func (e *Element) SetActive(active bool) {
	if active {
		e.sel.AddClass(resolver.ActiveClass)
		return
	}
	e.sel.RemoveClass(resolver.ActiveClass)
}

// OnSelect queues fn; Document.Select runs it.
func (e *Element) OnSelect(fn func()) { e.handlers = append(e.handlers, fn) }

func (e *Element) tagged(target string) bool {
	for _, attr := range []string{resolver.SwitchAttr, resolver.SetterAttr} {
		if v, ok := e.sel.Attr(attr); ok && strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func (e *Element) fire() bool {
	for _, fn := range e.handlers {
		fn()
	}
	return len(e.handlers) > 0
}
