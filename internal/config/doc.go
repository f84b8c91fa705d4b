// Package config defines optional blversion settings loaded from YAML.
//
// A settings file is only read when a path is given explicitly; without one
// the tool runs on Default values.
package config
