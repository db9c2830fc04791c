package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		data     []byte
		want     string
	}{
		{"utf8", "utf8", []byte("FileRegio"), "FileRegio"},
		{"utf16le", "UTF-16LE", []byte{'H', 0, 'i', 0}, "Hi"},
		{"utf16be", "utf16be", []byte{0, 'H', 0, 'i'}, "Hi"},
		{"windows1252", "windows-1252", []byte{'w', 'e', 'i', 'r', 'd', 0x99}, "weird™"},
		{"latin1", "latin1", []byte{0xe4, 0xf6, 0xfc}, "äöü"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.encoding, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecodeUTF16(t *testing.T) {
	raw, err := Encode("utf16le", "abcd_äöüß")
	require.NoError(t, err)
	assert.Len(t, raw, 18)

	got, err := Decode("utf16le", raw)
	require.NoError(t, err)
	assert.Equal(t, "abcd_äöüß", got)
}

func TestUnknownEncoding(t *testing.T) {
	_, err := Decode("ebcdic", []byte("x"))
	require.ErrorIs(t, err, ErrUnknownEncoding)

	_, err = Encode("ebcdic", "x")
	require.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"latin1", "utf16be", "utf16le", "utf8", "windows1252"}, Names())
}
