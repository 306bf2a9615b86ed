package web

import "embed"

// StaticFS holds the embedded static assets (page stylesheet and stream client).
//
//go:embed static/*
var StaticFS embed.FS
