// Package types holds the shared interfaces used across ren's packages.
package types
