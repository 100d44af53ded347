//go:build js && wasm

package browser

import (
	"syscall/js"

	"finitefield.org/hanko-langgate/internal/resolver"
)

type document struct {
	doc js.Value
}

func newDocument() *document { return &document{doc: js.Global().Get("document")} }

func (d *document) IsGateway() (gateway bool) {
	defer func() {
		if recover() != nil {
			gateway = false
		}
	}()
	root := d.doc.Get("documentElement")
	if !isObject(root) {
		return false
	}
	v := root.Call("getAttribute", resolver.GatewayAttr)
	return v.Type() == js.TypeString && v.String() == resolver.GatewayValue
}

func (d *document) SwitchLinks() []resolver.Element { return d.query(resolver.SwitchAttr) }

func (d *document) Setters() []resolver.Element { return d.query(resolver.SetterAttr) }

func (d *document) SetHint(text string) (ok bool) {
	defer recoverAbsent(&ok)
	hint := d.doc.Call("querySelector", "["+resolver.HintAttr+"]")
	if !isObject(hint) {
		return false
	}
	hint.Set("textContent", text)
	return true
}

func (d *document) query(attr string) (out []resolver.Element) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	nodes := d.doc.Call("querySelectorAll", "["+attr+"]")
	n := nodes.Length()
	out = make([]resolver.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &element{node: nodes.Index(i)})
	}
	return out
}

// element wraps a DOM node. Click callbacks are never released; the page
// owns them until unload.
type element struct {
	node js.Value
}

func (e *element) Attr(name string) (v string, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = "", false
		}
	}()
	attr := e.node.Call("getAttribute", name)
	if attr.Type() != js.TypeString {
		return "", false
	}
	return attr.String(), true
}

func (e *element) SetHref(href string) {
	defer ignorePanic()
	e.node.Call("setAttribute", "href", href)
}

func (e *element) SetActive(active bool) {
	defer ignorePanic()
	op := "remove"
	if active {
		op = "add"
	}
	e.node.Get("classList").Call(op, resolver.ActiveClass)
}

func (e *element) OnSelect(fn func()) {
	defer ignorePanic()
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	e.node.Call("addEventListener", "click", cb)
}
