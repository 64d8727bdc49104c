// Package web embeds the browser client. It is a pure consumer of the
// /api/trips endpoints and is served from the same origin as the API.
package web

import "embed"

// FS holds index.html and its assets, embedded at compile time.
//
//go:embed index.html app.js style.css
var FS embed.FS
