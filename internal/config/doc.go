// Package config reads user-level settings stored at ~/.plugsmith/config.yaml.
// It provides functions to load and read configuration keys such as wizard
// answer defaults and the verbosity toggle, with PLUGSMITH_* environment
// variables taking precedence over the file.
package config
