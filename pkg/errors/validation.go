package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ValidateBranchID validates a branch identifier read from a topology
// description or a flag.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or surrounding whitespace
//   - Maximum length of 256 characters
func ValidateBranchID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "branch id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "branch id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "branch id %q contains invalid control characters", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "branch id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - If exts is non-empty, the extension must be one of them
func ValidatePath(path string, exts ...string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if len(exts) > 0 {
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(exts, ext) {
			return New(ErrCodeInvalidFormat, "unsupported file extension %q (want one of %s)", ext, strings.Join(exts, ", "))
		}
	}

	return nil
}
