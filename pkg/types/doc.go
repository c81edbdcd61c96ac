// Package types holds the values shared by the sortkit facade and its
// command-line tools: typed errors, input kinds, limits and result records.
//
// The core packages (array, group, sorts) never return errors; invalid
// arguments degrade silently there. Errors only appear at the outer layer,
// where user input is validated before a run starts.
//
// This package has no dependencies beyond the standard library.
package types
