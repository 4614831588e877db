// Package textio reads text input for the huffcode tool, decoding legacy
// single-byte charsets into UTF-8.
package textio

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var charsets = map[string]*charmap.Charmap{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"cp866":        charmap.CodePage866,
	"cp1251":       charmap.Windows1251,
	"windows-1251": charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
}

// IsUTF8 returns true iff charset names UTF-8, which needs no decoding.
func IsUTF8(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// NewReader wraps r so that it yields UTF-8 decoded from charset.
func NewReader(r io.Reader, charset string) (io.Reader, error) {
	if IsUTF8(charset) {
		return r, nil
	}
	cm, found := charsets[strings.ToLower(strings.TrimSpace(charset))]
	if !found {
		return nil, errors.Errorf("unknown charset %q", charset)
	}
	return transform.NewReader(r, cm.NewDecoder()), nil
}

// ReadString reads all of r, decoding from charset.
func ReadString(r io.Reader, charset string) (string, error) {
	dr, err := NewReader(r, charset)
	if err != nil {
		return "", err
	}
	raw, err := io.ReadAll(dr)
	if err != nil {
		return "", errors.Wrap(err, "read")
	}
	return string(raw), nil
}

// ReadFile reads the file at path, decoding from charset.
func ReadFile(path string, charset string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %q", path)
	}
	defer f.Close()

	text, err := ReadString(f, charset)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %q", path)
	}
	return text, nil
}
