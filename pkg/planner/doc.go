// Package planner builds and validates rename plans. All conflict
// detection happens here, before any filesystem mutation: a plan that
// leaves this package is safe to execute in full.
package planner
