// Package templates holds the server-rendered pages. They are embedded so a
// broken page structure fails at startup, not mid-request, and so tests can
// render from any working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
