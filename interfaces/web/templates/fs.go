// Package templates holds the embedded static assets served under /assets.
package templates

import "embed"

// FS contains the static assets.
//
//go:embed assets
var FS embed.FS
