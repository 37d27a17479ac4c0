// Package config loads a flatlog Logger from YAML.
//
// The logger itself is configured through setters and the Builder; this
// package is a thin layer that maps a YAML document onto those calls.
// Unknown keys are rejected so that typos surface at startup.
package config
