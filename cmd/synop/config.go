package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/pflag"
)

// flagConfig is an application configuration on top of the command line
// flags. Keys are flag names, e.g. "panic-on-malformed-dots".
// Tracing keys ("tracingsyntax", …) all map to flag --trace.
type flagConfig struct {
	flags *pflag.FlagSet
}

var _ schuko.Configuration = flagConfig{}

// configure makes the command line flags the global configuration, with
// global tracers logging through the Go standard logger.
func configure(flags *pflag.FlagSet) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(flagConfig{flags: flags})
}

// InitDefaults is part of interface schuko.Configuration.
func (c flagConfig) InitDefaults() {}

// IsSet is true for flags given on the command line.
func (c flagConfig) IsSet(key string) bool {
	f := c.flags.Lookup(key)
	return f != nil && f.Changed
}

// GetString is part of interface schuko.Configuration.
func (c flagConfig) GetString(key string) string {
	switch {
	case key == "tracing" || key == "tracing.adapter":
		return "go"
	case strings.HasPrefix(key, "tracing"):
		key = "trace"
	}
	if f := c.flags.Lookup(key); f != nil {
		return f.Value.String()
	}
	return ""
}

// GetInt is part of interface schuko.Configuration.
func (c flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

// GetBool is part of interface schuko.Configuration.
func (c flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

// IsInteractive is part of interface schuko.Configuration.
func (c flagConfig) IsInteractive() bool { return false }
