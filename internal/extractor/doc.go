// Package extractor reads the blend2d version out of src/blend2d/api.h.
//
// The header is located relative to the project root, which defaults to the
// parent of the directory holding the running executable. The first
// BL_VERSION/BL_MAKE_VERSION definition found is rendered as "major.minor.patch".
// Every failure collapses to the Unknown fallback and is only reported to the
// context logger at debug level.
package extractor
