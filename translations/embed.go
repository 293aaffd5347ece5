// Package translations embeds the message catalogs for matcher issue codes
// and service errors.
package translations

import "embed"

// FS holds every catalog file at its root.
//
//go:embed *.yaml
var FS embed.FS
