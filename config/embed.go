package config

import "embed"

//go:embed data
var dataFS embed.FS
