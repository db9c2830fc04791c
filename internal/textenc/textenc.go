// Package textenc converts raw region bytes to and from text in the encodings
// commonly found inside binary files.
package textenc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned for an encoding name not in Names().
var ErrUnknownEncoding = errors.New("textenc: unknown encoding")

var encodings = map[string]encoding.Encoding{
	"utf8":        unicode.UTF8,
	"utf16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"windows1252": charmap.Windows1252,
	"latin1":      charmap.ISO8859_1,
}

// Names returns the supported encoding names in sorted order.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Decode converts data in the named encoding to a UTF-8 string.
// Names are case-insensitive and may contain dashes ("UTF-16LE").
func Decode(name string, data []byte) (string, error) {
	enc, err := lookup(name)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("textenc: decode %s: %w", name, err)
	}
	return string(out), nil
}

// Encode converts s to bytes in the named encoding.
func Encode(name, s string) ([]byte, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode %s: %w", name, err)
	}
	return out, nil
}
