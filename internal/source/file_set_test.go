package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.dt", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.dt", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.dt")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("Expected first file content 'hello world', got %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Errorf("Expected nil for unknown FileID")
	}
}

func TestAddKeepsPathAsGiven(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("./dir/../main.dt", []byte("x"), 0)
	f := fs.Get(id)
	if f.Path != "./dir/../main.dt" {
		t.Fatalf("Path = %q, want it unchanged", f.Path)
	}
	if loc := f.LocationAt(1); loc.Filename != "./dir/../main.dt" {
		t.Fatalf("LocationAt filename = %q", loc.Filename)
	}
	// поиск работает по очищенному виду
	for _, alias := range []string{"main.dt", "./main.dt", "./dir/../main.dt"} {
		if got, ok := fs.GetLatest(alias); !ok || got != id {
			t.Fatalf("GetLatest(%q) = %d, %v", alias, got, ok)
		}
	}
}

func TestAddVirtualCopiesContent(t *testing.T) {
	fs := NewFileSet()
	buf := []byte("let x")
	id := fs.AddVirtual("", buf)
	buf[0] = 'X'

	f := fs.Get(id)
	if string(f.Content) != "let x" {
		t.Fatalf("virtual file content changed with caller buffer: %q", f.Content)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected FileVirtual flag")
	}
	if f.Path != "" {
		t.Fatalf("expected empty path for anonymous buffer, got %q", f.Path)
	}
}

func TestLocationAt(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.dt", []byte("ab\ncd\n\nef"))
	f := fs.Get(id)

	tests := []struct {
		off  uint32
		want Location
	}{
		{0, Location{"main.dt", 1, 1}},
		{1, Location{"main.dt", 1, 2}},
		{2, Location{"main.dt", 1, 3}}, // сам '\n' принадлежит первой строке
		{3, Location{"main.dt", 2, 1}},
		{6, Location{"main.dt", 3, 1}},
		{7, Location{"main.dt", 4, 1}},
		{9, Location{"main.dt", 4, 3}},
	}
	for _, tt := range tests {
		if got := f.LocationAt(tt.off); got != tt.want {
			t.Errorf("LocationAt(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.dt", []byte("first\n\nthird")))

	cases := map[uint32]string{0: "", 1: "first", 2: "", 3: "third", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
	if f.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", f.LineCount())
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.dt")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let\r\nmut\r")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "let\nmut\r" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
}

func TestLoadDecodesUTF16(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.dt")
	// "fn" в UTF-16LE с BOM
	raw := []byte{0xFF, 0xFE, 'f', 0x00, 'n', 0x00}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "fn" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileDecodedUTF16 == 0 {
		t.Fatalf("expected FileDecodedUTF16 flag")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.dt")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if fs.Len() != 0 {
		t.Fatalf("failed load must not add a file")
	}
}

func TestFormatPath(t *testing.T) {
	f := &File{Path: "dir/sub/main.dt"}
	if got := f.FormatPath("basename", ""); got != "main.dt" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "dir/sub/main.dt" {
		t.Errorf("auto = %q", got)
	}
}
