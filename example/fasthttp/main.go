// FILE: example/fasthttp/main.go
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	console "github.com/y21/dash-website"
	"github.com/y21/dash-website/compat"
)

// Minimal playground host: POST /eval logs the submitted JSON value into the
// console, GET /transcript serves the rendered entries. Server-internal
// fasthttp messages flow into the same console through the compat adapter.

var dbg *console.Console

func main() {
	var err error
	dbg, err = console.NewBuilder().
		Width("100%").
		Height("400px").
		InternalErrorsToStderr(true).
		Build()
	if err != nil {
		panic(err)
	}

	adapter := compat.NewFastHTTPAdapter(
		dbg,
		compat.WithDefaultLevel(console.LevelLog),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  adapter,

		Name:         "dash-playground",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	fmt.Println("Starting playground on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/eval":
		var v any
		if err := json.Unmarshal(ctx.PostBody(), &v); err != nil {
			dbg.Error("invalid payload:", err.Error())
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			return
		}
		dbg.Log(v)
		ctx.SetStatusCode(fasthttp.StatusNoContent)

	case "/transcript":
		ctx.SetContentType("text/html; charset=utf-8")
		fmt.Fprintf(ctx, `<div class="console" style="%s">`, dbg.Style())
		for _, entry := range dbg.Entries() {
			fmt.Fprintf(ctx, `<div class="%s">%s</div>`, entry.Class(), entry.HTML())
		}
		fmt.Fprint(ctx, `</div>`)

	case "/clear":
		dbg.Clear()
		ctx.SetStatusCode(fasthttp.StatusNoContent)

	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}
