//go:build js && wasm

// Command wasm is the in-browser half of the portfolio: it attaches the page
// behaviors once the document is parsed and then parks forever so the
// registered callbacks stay alive.
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/wasm
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/dom/jsdom"
	"github.com/Zachkp/portfolio/internal/ui"
)

func main() {
	// Stderr is routed to the browser console.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := ui.DefaultConfig()
	cfg.Logger = logger

	doc := js.Global().Get("document")
	start := func() {
		env := jsdom.Env()
		ui.Init(env, cfg, nil)
		// The module can finish downloading after the window load event.
		if doc.Get("readyState").String() == "complete" {
			if body := env.Document.Body(); body != nil {
				body.AddClass("loaded")
			}
		}
	}

	if doc.Get("readyState").String() == "loading" {
		var onReady js.Func
		onReady = js.FuncOf(func(this js.Value, args []js.Value) any {
			start()
			onReady.Release()
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", onReady)
	} else {
		start()
	}

	select {}
}
