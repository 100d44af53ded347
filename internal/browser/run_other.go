//go:build !(js && wasm)

package browser

import "go.uber.org/zap"

// Run reports ErrUnsupported on this platform.
func Run(*zap.Logger) error { return ErrUnsupported }
