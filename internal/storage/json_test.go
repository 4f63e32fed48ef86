package storage

import (
	"testing"
)

func TestEncodeJSON_IndentedEscapedNoNewline(t *testing.T) {
	v := map[string]any{
		"note":  "café <demo> & 🚀",
		"files": []string{},
	}
	got, err := EncodeJSON(v)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	want := "{\n  \"files\": [],\n  \"note\": \"caf\\u00e9 <demo> & \\ud83d\\ude80\"\n}"
	if string(got) != want {
		t.Errorf("EncodeJSON =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeJSON_ASCIIOnly(t *testing.T) {
	got, err := EncodeJSON([]string{"ü", "\u2028", "\ufffd"})
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range got {
		if b >= 0x80 {
			t.Fatalf("non-ASCII byte %#x at %d in %q", b, i, got)
		}
	}
	if got[len(got)-1] == '\n' {
		t.Error("output should not end with a newline")
	}
}
