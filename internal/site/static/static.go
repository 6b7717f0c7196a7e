// Package static exposes the site's embedded assets for HTTP serving.
package static

import "embed"

// FS holds the site assets served under /static/.
//
//go:embed *.css
var FS embed.FS
