package encoder

import (
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
)

// DetectEncoding detects the character encoding of the given bytes
func DetectEncoding(data []byte) (string, error) {
	if len(data) == 0 {
		return "UTF-8", nil
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil {
		return "", fmt.Errorf("failed to detect encoding: %w", err)
	}

	return result.Charset, nil
}

// Describe reports whether value is valid UTF-8 and, if not, the charset it most likely uses.
// The charset is empty when detection fails.
func Describe(value string) (charset string, ok bool) {
	if utf8.ValidString(value) {
		return "UTF-8", true
	}

	charset, err := DetectEncoding([]byte(value))
	if err != nil {
		return "", false
	}
	return charset, false
}
