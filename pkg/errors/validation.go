package errors

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// MaxCells bounds the boards accepted from files and flags. The diagram can
// grow exponentially with the board's shorter side, so callers are expected
// to bound the input before sweeping.
const MaxCells = 400

// ValidateDimensions checks board dimensions before a board is built.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidBoard, "board dimensions must be positive, got %dx%d", width, height)
	}
	if width*height > MaxCells {
		return New(ErrCodeTooLarge, "board %dx%d has more than %d cells", width, height, MaxCells)
	}
	return nil
}

// ParsePairList parses a comma-separated list of 1-based pair numbers such
// as "1,3,4". Ranges like "2-5" are expanded. The result is ascending and
// free of duplicates. An empty string yields nil (every pair).
func ParsePairList(s string, pairCount int) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		lo, hi, isRange := strings.Cut(field, "-")
		a, err := strconv.Atoi(lo)
		if err != nil {
			return nil, New(ErrCodeInvalidPairs, "invalid pair %q", field)
		}
		b := a
		if isRange {
			if b, err = strconv.Atoi(hi); err != nil || b < a {
				return nil, New(ErrCodeInvalidPairs, "invalid pair range %q", field)
			}
		}
		for k := a; k <= b; k++ {
			if k < 1 || k > pairCount {
				return nil, New(ErrCodeInvalidPairs, "pair %d out of range (board has %d)", k, pairCount)
			}
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// ValidateChoice checks that value is one of valid. kind names the option
// in the error message.
func ValidateChoice(code Code, kind, value string, valid []string) error {
	if slices.Contains(valid, value) {
		return nil
	}
	return New(code, "unknown %s %q (valid: %s)", kind, value, strings.Join(valid, ", "))
}

// ValidatePath validates a board file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
