package config

import (
	"io/fs"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/pkg/fileutil"
)

// ManifestName is the project-local manifest file looked up in the working
// directory.
const ManifestName = "rigup.toml"

// Manifest is an optional per-project extension of the capability catalog:
// extra generic packages to install and toolchain toggles scoped to the
// project, layered over the user config.
type Manifest struct {
	Packages struct {
		// Extra lists backend package names appended to the generic bulk
		// install. They are installed best-effort and never required.
		Extra []string `toml:"extra"`
	} `toml:"packages"`

	Toolchains map[string]bool `toml:"toolchains"`
}

// LoadManifest parses the TOML manifest at path. A missing file is not an
// error; it returns (nil, nil) so callers can treat the manifest as purely
// optional.
func LoadManifest(path string) (*Manifest, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	return &m, nil
}

// Merge layers the manifest's toolchain toggles over the user config.
// Manifest entries win. The receiver is not modified.
func (c *Config) Merge(m *Manifest) *Config {
	if m == nil {
		return c
	}
	out := &Config{Version: c.Version, Skip: c.Skip}
	out.Toolchains = make(map[string]bool, len(c.Toolchains)+len(m.Toolchains))
	for k, v := range c.Toolchains {
		out.Toolchains[k] = v
	}
	for k, v := range m.Toolchains {
		out.Toolchains[k] = v
	}
	return out
}
