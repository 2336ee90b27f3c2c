package sheet

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Bytes Windows-1252 leaves undefined. Their presence means the file was not
// produced by a cp1252 writer, so the decoder moves on to Latin-1.
var cp1252Undefined = []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D}

// decodeText decodes raw feed bytes, trying UTF-8, Windows-1252 and Latin-1
// in that order and returning the name of the encoding that succeeded.
// When nothing decodes cleanly it falls back to lossy UTF-8 replacement and
// reports lossy=true; decoding never fails outright.
func decodeText(raw []byte) (text string, encoding string, lossy bool) {
	if utf8.Valid(raw) {
		return string(raw), "utf-8", false
	}

	if !containsAny(raw, cp1252Undefined) {
		if s, err := charmap.Windows1252.NewDecoder().String(string(raw)); err == nil {
			return s, "cp1252", false
		}
	}

	// Latin-1 maps every byte, so this cannot fail.
	if s, err := charmap.ISO8859_1.NewDecoder().String(string(raw)); err == nil {
		return s, "latin-1", false
	}

	return string(bytes.ToValidUTF8(raw, []byte("�"))), "utf-8", true
}

func containsAny(raw []byte, set []byte) bool {
	for _, b := range set {
		if bytes.IndexByte(raw, b) >= 0 {
			return true
		}
	}
	return false
}
