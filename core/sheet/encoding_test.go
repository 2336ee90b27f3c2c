package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeText_UTF8First(t *testing.T) {
	text, encoding, lossy := decodeText([]byte("Café catalog"))
	assert.Equal(t, "Café catalog", text)
	assert.Equal(t, "utf-8", encoding)
	assert.False(t, lossy)
}

func TestDecodeText_CP1252Fallback(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252 but invalid UTF-8.
	raw := []byte{'s', 'a', 'y', ' ', 0x93, 'h', 'i', 0x94}
	text, encoding, lossy := decodeText(raw)
	assert.Equal(t, "say “hi”", text)
	assert.Equal(t, "cp1252", encoding)
	assert.False(t, lossy)
}

func TestDecodeText_Latin1AfterCP1252(t *testing.T) {
	// 0x81 is undefined in Windows-1252, pushing the decoder to Latin-1.
	raw := []byte{'x', 0x81, 'y', 0xE9}
	text, encoding, lossy := decodeText(raw)
	assert.Equal(t, "xyé", text)
	assert.Equal(t, "latin-1", encoding)
	assert.False(t, lossy)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, '|', detectDelimiter("ItemNumber|ShortName|MSRP\nA|B|1"))
	assert.Equal(t, ',', detectDelimiter("ItemNum,Name,Prc1\nA,B,1"))
	assert.Equal(t, ',', detectDelimiter("single_column"))
}
