// Package config loads, merges, and validates configuration for the showcase
// server and the admin client.
//
// Values are collected from three sources and merged with mergo, first
// non-zero value winning: environment variables (caarlos0/env), command-line
// flags, and an optional JSON file whose path comes from the first two
// sources. Built-in defaults fill whatever remains unset.
package config
