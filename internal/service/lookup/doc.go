// Package lookup implements the blversion command workflow.
//
// It merges flags with the optional settings file, scopes the context logger,
// asks the extractor for the version and writes exactly one line to stdout.
package lookup
