// Package config loads ren's defaults from config files and the
// environment. Configuration only supplies defaults for flags; it never
// introduces behavior a flag can't express.
package config
