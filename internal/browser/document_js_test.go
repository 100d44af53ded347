//go:build js && wasm

package browser

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"

	"finitefield.org/hanko-langgate/internal/resolver"
)

func TestDetachedElementDegrades(t *testing.T) {
	t.Parallel()

	el := &element{node: js.Undefined()}

	v, ok := el.Attr(resolver.SwitchAttr)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.NotPanics(t, func() { el.SetHref("/ja/") })
	assert.NotPanics(t, func() { el.SetActive(true) })
	assert.NotPanics(t, func() { el.OnSelect(func() {}) })
}
