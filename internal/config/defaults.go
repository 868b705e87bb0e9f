package config

import (
	_ "embed"
)

//go:embed defaults/render.yaml
var defaultRenderYAML []byte
