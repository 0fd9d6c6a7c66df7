package fileutils

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// encodingAliases maps short charset names found in bank model
// configurations to encodings htmlindex does not resolve the same way.
var encodingAliases = map[string]encoding.Encoding{
	"utf8":    unicode.UTF8,
	"utf-8":   unicode.UTF8,
	"latin1":  charmap.ISO8859_1,
	"binary":  charmap.ISO8859_1,
	"utf16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"ucs2":    unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"ucs-2":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
}

// LookupEncoding resolves a charset name ("utf-8", "latin1",
// "windows-1252", "iso-8859-15", ...) to an encoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("empty encoding name")
	}
	if enc, ok := encodingAliases[key]; ok {
		return enc, nil
	}

	enc, err := htmlindex.Get(key)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding '%s': %w", name, err)
	}
	return enc, nil
}

// NewDecodingReader wraps r so that it yields UTF-8 decoded from the named
// charset. A leading byte order mark is consumed.
func NewDecodingReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}

	var decoder transform.Transformer = enc.NewDecoder()
	if enc == unicode.UTF8 {
		decoder = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}
	return transform.NewReader(r, decoder), nil
}
