// Package output manages the publish output directory.
//
// Preparation is deliberately conservative: if the output path exists
// but is a regular file, the run is aborted before any destructive
// operation, so a mistyped -o can never clear the wrong thing. An
// existing directory is emptied (not removed) unless the keep flag is
// set; a missing directory is created with its parents.
package output
