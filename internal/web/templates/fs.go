// Package templates embeds the dashboard's html/template files.
package templates

import "embed"

//go:embed base.html pages partials
var FS embed.FS
