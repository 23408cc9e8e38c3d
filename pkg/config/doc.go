// Package config loads hexmark's configuration.
//
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/hexmark/config.toml or an explicit path
//  3. HEXMARK_* environment variables, HEXMARK_HTTP_RETRIES => http.retries
package config
