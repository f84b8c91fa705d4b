// Package version exposes build metadata of the blversion tool itself.
//
// This is not the blend2d version; that comes from the extractor package.
// Variables are injected at build time via Go ldflags.
package version
