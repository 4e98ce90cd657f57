// Package executor applies validated rename plans. It is deliberately
// thin: all safety decisions were made by the planner, so execution is
// a straight walk over the pairs, either echoing them (dry-run) or
// performing the atomic rename for each.
package executor
