// Package dom implements the resolver's document contract over parsed HTML,
// for rendering pages outside a browser.
package dom

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"finitefield.org/hanko-langgate/internal/resolver"
)

// Document wraps a parsed HTML page.
type Document struct {
	doc      *goquery.Document
	elements map[*html.Node]*Element
}

var _ resolver.Document = (*Document)(nil)

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc, elements: map[*html.Node]*Element{}}, nil
}

// IsGateway reports whether <html data-page="lang-gateway"> is present.
func (d *Document) IsGateway() bool {
	v, _ := d.doc.Find("html").First().Attr(resolver.GatewayAttr)
	return v == resolver.GatewayValue
}

func (d *Document) SwitchLinks() []resolver.Element {
	return d.collect("[" + resolver.SwitchAttr + "]")
}

func (d *Document) Setters() []resolver.Element {
	return d.collect("[" + resolver.SetterAttr + "]")
}

// SetHint replaces the text of the first hint element.
func (d *Document) SetHint(text string) bool {
	hint := d.doc.Find("[" + resolver.HintAttr + "]").First()
	if hint.Length() == 0 {
		return false
	}
	hint.SetText(text)
	return true
}

// Select runs the selection handlers registered on every switch or setter
// element tagged for target, in document order. It reports how many
// elements fired.
func (d *Document) Select(target string) int {
	fired := 0
	sel := "[" + resolver.SwitchAttr + "], [" + resolver.SetterAttr + "]"
	d.doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		el := d.element(s)
		if el.tagged(target) && el.fire() {
			fired++
		}
	})
	return fired
}

// Find exposes the underlying selection for callers that inspect the page.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Render writes the page as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}

// String renders the page, returning "" on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) collect(selector string) []resolver.Element {
	var out []resolver.Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, d.element(s))
	})
	return out
}

func (d *Document) element(s *goquery.Selection) *Element {
	n := s.Get(0)
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{sel: s}
	d.elements[n] = el
	return el
}
