package calib

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// MapCal runs on Windows and writes CHARTCAL.DIR in the ANSI code page,
// so chart names and comments often carry bytes like 0xB0 for '°'.
var charsets = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
}

// DecodeReader wraps r so that it yields UTF-8 decoded from the named
// charset. An empty name or "raw" returns r unchanged.
func DecodeReader(r io.Reader, name string) (io.Reader, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "raw" {
		return r, nil
	}
	enc, ok := charsets[key]
	if !ok {
		return nil, &ErrUnknownCharset{Name: name}
	}
	return enc.NewDecoder().Reader(r), nil
}
