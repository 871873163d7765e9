package avalon

import (
	_ "embed"
)

// Default server configuration, used when no config file is present on disk.
//
//go:embed config/server.yaml
var DefaultServerYAML []byte
