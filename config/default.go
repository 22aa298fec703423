package config

import _ "embed"

// DefaultConfigYAML configuración por defecto embebida en el binario
//
//go:embed config.yaml
var DefaultConfigYAML []byte
