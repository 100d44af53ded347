// Package browser runs the language resolver inside a page, backed by the
// DOM, window.location and window.localStorage. It only does real work when
// compiled with GOOS=js GOARCH=wasm.
package browser

import "errors"

// ErrUnsupported is returned by Run outside a js/wasm build.
var ErrUnsupported = errors.New("browser: requires GOOS=js GOARCH=wasm")
