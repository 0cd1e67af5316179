// Package web embeds the HTML templates and static assets served by the
// HTTP layer, so the binary ships self-contained.
package web

import "embed"

// TemplatesFS holds the expense list and monthly summary templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds the stylesheet and any other static assets.
//
//go:embed static/*
var StaticFS embed.FS
