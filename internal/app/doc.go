// Package app wires stores and services together for the CLI and loads the
// optional TOML configuration file.
package app
