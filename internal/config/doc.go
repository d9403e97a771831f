// Package config handles configuration loading and validation from
// environment variables and an optional config file, covering the
// server settings and the optional account bootstrap file.
package config
