package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateGraphName validates a stored graph name for safety and
// correctness. It rejects names that could be used for path traversal or
// injection when the name becomes a file path, cache key, or document ID.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "graph name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "graph name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "graph name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "graph name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// nodeIDRegex matches node IDs safe to use across every encoding and
// storage surface.
var nodeIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:/-]*$`)

// ValidateNodeID validates a node ID arriving from an external surface
// (API request, CLI flag, stored document).
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node ID cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "node ID too long (max 256 characters)")
	}
	if !nodeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid node ID: %q", id)
	}
	return nil
}

// encodingNames is the closed set of encoding names accepted on external
// surfaces.
var encodingNames = map[string]bool{
	"adjacency": true,
	"edges":     true,
	"matrix":    true,
	"linear":    true,
	"tree":      true,
}

// ValidateEncodingName validates an encoding name from a request or flag.
func ValidateEncodingName(name string) error {
	if !encodingNames[name] {
		return New(ErrCodeInvalidEncoding, "unknown encoding: %q (want adjacency, edges, matrix, linear, or tree)", name)
	}
	return nil
}

// ValidatePath validates an output file path for safety. It prevents path
// traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
