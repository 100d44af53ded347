//go:build js && wasm

package browser

import (
	"go.uber.org/zap"

	"finitefield.org/hanko-langgate/internal/resolver"
)

// Run evaluates the current page once. Click handlers registered during the
// run stay alive for the lifetime of the page, so callers must keep the Go
// program running afterwards.
func Run(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := resolver.New(newEnv(), newDocument(), resolver.WithLogger(logger)).Run()
	logger.Debug("resolved",
		zap.Bool("redirected", out.Redirected),
		zap.String("target", out.Target),
		zap.String("stored", string(out.Stored)),
	)
	return nil
}
