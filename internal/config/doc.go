// Package config manages rigup's layered configuration.
//
// Three layers exist, later winning over earlier:
//
//  1. Built-in defaults (full catalog, everything enabled).
//  2. The user config file (config.yaml under the XDG config home or the
//     working directory), loaded through Viper with RIGUP_* environment
//     overrides.
//  3. An optional project-local rigup.toml manifest with extra packages
//     and toolchain toggles.
package config
