// Command langwasm is the in-page language resolver. Build it with
//
//	GOOS=js GOARCH=wasm go build -o site/lang.wasm ./cmd/langwasm
//
// and load it with wasm_exec.js from the Go distribution.
package main

import (
	"log"

	"go.uber.org/zap"

	"finitefield.org/hanko-langgate/internal/browser"
	"finitefield.org/hanko-langgate/internal/observability"
)

func main() {
	// The console is the only sink in a page; keep it quiet unless debugging.
	logger, err := observability.NewLogger("warn")
	if err != nil {
		logger = zap.NewNop()
	}

	if err := browser.Run(logger); err != nil {
		log.Fatalf("langwasm: %v", err)
	}
	// Keep click handlers registered by the resolver alive.
	select {}
}
