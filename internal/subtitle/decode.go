package subtitle

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var boms = [][]byte{{0xEF, 0xBB, 0xBF}, {0xFF, 0xFE}, {0xFE, 0xFF}}

// Decode turns raw file bytes into text. A UTF-8 or UTF-16 byte order mark
// selects the encoding and is stripped. Input without one is read as UTF-8,
// or as GB18030 when it is not valid UTF-8.
func Decode(data []byte) (string, error) {
	var dec transform.Transformer
	switch {
	case hasBOM(data), utf8.Valid(data):
		dec = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	default:
		dec = simplifiedchinese.GB18030.NewDecoder()
	}

	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

func hasBOM(data []byte) bool {
	for _, bom := range boms {
		if bytes.HasPrefix(data, bom) {
			return true
		}
	}
	return false
}
