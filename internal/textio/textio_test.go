package textio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadString(t *testing.T) {
	type testRow struct {
		charset string
		input   []byte
		expect  string
	}

	testData := [...]testRow{
		{"", []byte("abc"), "abc"},
		{"UTF-8", []byte("ёж"), "ёж"},
		{"latin1", []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"windows-1251", []byte{0xE0, 0xE1, 0xE2}, "абв"},
	}

	for _, row := range testData {
		t.Run(row.charset, func(t *testing.T) {
			actual, err := ReadString(bytes.NewReader(row.input), row.charset)
			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestReadString_UnknownCharset(t *testing.T) {
	if _, err := ReadString(bytes.NewReader(nil), "ebcdic"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte{0xE0, 0xE0}, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	actual, err := ReadFile(path, "cp1251")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if expect := "аа"; expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}
