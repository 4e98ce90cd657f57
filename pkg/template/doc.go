// Package template expands replacement templates. A template is
// literal text mixed with #k placeholder tokens referencing the capture
// groups of a matched pattern, #0 being the whole match.
package template
