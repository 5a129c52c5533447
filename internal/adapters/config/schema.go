package config

// Stitchfile represents the structure of the stitch.yaml configuration file.
type Stitchfile struct {
	Version   string            `yaml:"version"`
	Mode      string            `yaml:"mode"`
	Origins   map[string]string `yaml:"origins"`
	Paths     []PathDTO         `yaml:"paths"`
	Cache     string            `yaml:"cache"`
	Libraries LibrariesDTO      `yaml:"libraries"`
}

// PathDTO represents one search location in the configuration. Locations are
// listed highest priority first, matching how they end up in the settings.
type PathDTO struct {
	Origin  string `yaml:"origin"`
	Base    string `yaml:"base"`
	Library bool   `yaml:"library"`
}

// LibrariesDTO carries the well-known shared-library overrides. Each value is
// either "origin:path" or the literal "none" to leave the resource unmanaged.
// An absent key keeps the bundled default.
type LibrariesDTO struct {
	DOM        string `yaml:"dom"`
	Widgets    string `yaml:"widgets"`
	Stylesheet string `yaml:"stylesheet"`
}
