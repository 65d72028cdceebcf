package mojibake

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DecodeText returns data as a string if it is valid UTF-8. Otherwise it
// returns encoding.ErrInvalidUTF8 and no text; callers must not scan a
// partially decoded file.
func DecodeText(data []byte) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
