package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/blend2d/blversion/internal/logger"
)

const (
	// Unknown is returned whenever the version cannot be determined.
	Unknown = "unknown"
	// HeaderRelPath is the header location relative to the project root.
	HeaderRelPath = "src/blend2d/api.h"
)

var (
	// ErrRootUnresolved is returned when the executable location cannot be determined.
	ErrRootUnresolved = errors.New("project root unresolved")
	// ErrHeaderRead is returned when the header cannot be opened or read.
	ErrHeaderRead = errors.New("read header")
	// ErrHeaderDecode is returned when the header is not valid UTF-8 text.
	ErrHeaderDecode = errors.New("decode header")
	// ErrMacroNotFound is returned when the header has no version macro.
	ErrMacroNotFound = errors.New("version macro not found")
)

// macroPattern matches the version definition and captures major, minor and patch.
var macroPattern = regexp.MustCompile(`#define BL_VERSION BL_MAKE_VERSION\((\d+)\s*,\s*(\d+)\s*,\s*(\d+)\)`)

// Version resolves the project root from the executable location and
// returns the header version, or Unknown.
func Version(ctx context.Context) string {
	root, err := ProjectRoot()
	if err != nil {
		logger.DebugKV(ctx, "Falling back to unknown version", "error", err)

		return Unknown
	}

	return FromRoot(ctx, root)
}

// FromRoot returns the version of the header under root, or Unknown.
func FromRoot(ctx context.Context, root string) string {
	return FromFile(ctx, HeaderPath(root))
}

// FromFile returns the version defined in the header at path, or Unknown.
func FromFile(ctx context.Context, path string) string {
	version, err := extract(path)
	if err != nil {
		logger.DebugKV(ctx, "Falling back to unknown version", "header", path, "error", err)

		return Unknown
	}

	logger.DebugKV(ctx, "Extracted version", "header", path, "version", version)

	return version
}

// ProjectRoot returns the parent of the directory that holds the running executable.
func ProjectRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRootUnresolved, err)
	}

	return rootFromExecutable(exe), nil
}

// rootFromExecutable returns the grandparent directory of exe.
// Symlinks are followed first, so a linked binary finds the tree it lives in;
// a dangling link falls back to its own location.
func rootFromExecutable(exe string) string {
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(filepath.Dir(exe))
}

// HeaderPath joins root with HeaderRelPath.
func HeaderPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(HeaderRelPath))
}

// Parse returns the dotted version of the first macro definition found in text.
// The captured integers are kept verbatim, leading zeros included.
func Parse(text string) (string, error) {
	match := macroPattern.FindStringSubmatch(text)
	if match == nil {
		return "", ErrMacroNotFound
	}

	return strings.Join(match[1:], "."), nil
}

// Decode validates data as UTF-8 and returns it as text.
func Decode(data []byte) (string, error) {
	text, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHeaderDecode, err)
	}

	return string(text), nil
}

func extract(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHeaderRead, err)
	}

	text, err := Decode(data)
	if err != nil {
		return "", err
	}

	return Parse(text)
}
