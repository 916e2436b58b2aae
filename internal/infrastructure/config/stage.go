package config

// StageConfig is the root config for stage YAML files. The collision layer
// is a list of equal-length strings, one character per tile, resolved
// through Mapping.
type StageConfig struct {
	Name     string            `yaml:"name"`
	TileSize int               `yaml:"tileSize"`
	Spawn    PositionConfig    `yaml:"spawn"`
	Rows     []string          `yaml:"rows"`
	Mapping  map[string]string `yaml:"mapping"`
	Bats     []PositionConfig  `yaml:"bats"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
