package checksum

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sha256("hello\n")
const helloDigest = "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03"

func TestSum(t *testing.T) {
	if got := Sum([]byte("hello\n")); got != helloDigest {
		t.Errorf("Sum = %q", got)
	}
}

func TestFile_MatchesSum(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(p, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := File(p)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got != helloDigest {
		t.Errorf("File = %q, want %q", got, helloDigest)
	}
}

func TestFile_PathIndependent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "sub", "b.dat")
	_ = os.MkdirAll(filepath.Dir(b), 0o755)
	_ = os.WriteFile(a, []byte("same"), 0o644)
	_ = os.WriteFile(b, []byte("same"), 0o600)

	ha, err := File(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := File(b)
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Errorf("digests differ for identical content: %s vs %s", ha, hb)
	}
}

func TestReader_LargerThanChunk(t *testing.T) {
	data := bytes.Repeat([]byte("x"), ChunkSize*2+17)
	got, err := Reader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	if got != Sum(data) {
		t.Errorf("streamed digest differs from in-memory digest")
	}
}

func TestReader_Empty(t *testing.T) {
	got, err := Reader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("empty digest = %q", got)
	}
}

type failingReader struct{ n int }

func (f *failingReader) Read(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("disk on fire")
	}
	f.n--
	return copy(p, "abc"), nil
}

func TestReader_PropagatesError(t *testing.T) {
	if _, err := Reader(&failingReader{n: 2}); err == nil {
		t.Fatal("expected read error")
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
