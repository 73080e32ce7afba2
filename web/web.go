// Package web carries the embedded dashboard page.
package web

import (
	_ "embed"
)

// IndexHTML is the single-page dashboard served at /.
//
//go:embed index.html
var IndexHTML []byte
