package suicaparser

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// legacyEncodings are tried in order once the Unicode checks fail.
// Shift_JIS first: it is what the card reader software exports.
var legacyEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"Shift_JIS", japanese.ShiftJIS},
	{"EUC-JP", japanese.EUCJP},
}

// DecodeText detects the statement encoding and returns the UTF-8
// text along with the name of the detected encoding. Candidates:
// UTF-8 (with or without BOM), UTF-16 LE/BE (by BOM), Shift_JIS,
// EUC-JP. A legacy candidate is accepted only when it decodes without
// producing any replacement character.
func DecodeText(data []byte) (string, string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return string(bytes.TrimPrefix(data, utf8BOM)), "UTF-8", nil
	}
	if len(data) >= 2 && ((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF)) {
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", "", fmt.Errorf("error decoding UTF-16: %w", err)
		}
		return string(out), "UTF-16", nil
	}
	if utf8.Valid(data) {
		return string(data), "UTF-8", nil
	}
	for _, cand := range legacyEncodings {
		out, _, err := transform.Bytes(cand.enc.NewDecoder(), data)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			continue
		}
		return string(out), cand.name, nil
	}
	return "", "", fmt.Errorf("statement encoding not recognized")
}
