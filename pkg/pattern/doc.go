// Package pattern compiles user-supplied rename patterns, either
// shell-style wildcards or regular expressions, and matches them
// against candidate file names. Matching is always whole-string:
// a pattern never matches a substring of a name.
package pattern
