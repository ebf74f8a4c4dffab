package locator

import (
	"fmt"
	"io/fs"
	"testing"
)

// brokenFS opens every path but every read fails partway through.
type brokenFS struct{}

func (brokenFS) Open(name string) (fs.File, error) {
	return brokenFile{}, nil
}

type brokenFile struct{}

func (brokenFile) Stat() (fs.FileInfo, error) { return nil, fmt.Errorf("stat not supported") }
func (brokenFile) Read([]byte) (int, error)   { return 0, fmt.Errorf("read failed") }
func (brokenFile) Close() error               { return nil }

// deniedFS refuses to open anything.
type deniedFS struct{}

func (deniedFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestLookupProperty_Success(t *testing.T) {
	fsys := manifestFS(map[string]string{
		"lib/providers.properties": "# defaults\nexample.Widget = com.example.Impl\nother = x\n",
	})
	value, ok, err := LookupProperty(fsys, "lib/providers.properties", "example.Widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "com.example.Impl" {
		t.Errorf("expected com.example.Impl, got %q (ok=%v)", value, ok)
	}
}

func TestLookupProperty_MissingFile(t *testing.T) {
	value, ok, err := LookupProperty(manifestFS(nil), "lib/providers.properties", "example.Widget")
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if ok || value != "" {
		t.Errorf("expected miss, got %q (ok=%v)", value, ok)
	}
}

func TestLookupProperty_MissingKey(t *testing.T) {
	fsys := manifestFS(map[string]string{
		"lib/providers.properties": "other = x\n",
	})
	_, ok, err := LookupProperty(fsys, "lib/providers.properties", "example.Widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected miss for absent key")
	}
}

func TestLookupProperty_ReadErrorSurfaced(t *testing.T) {
	_, ok, err := LookupProperty(brokenFS{}, "lib/providers.properties", "example.Widget")
	if err == nil {
		t.Fatal("expected a read error to surface")
	}
	if ok {
		t.Error("expected no hit alongside the error")
	}
}

func TestLookupProperty_OpenErrorSurfaced(t *testing.T) {
	_, ok, err := LookupProperty(deniedFS{}, "lib/providers.properties", "example.Widget")
	if err == nil {
		t.Fatal("expected a permission error to surface")
	}
	if ok {
		t.Error("expected no hit alongside the error")
	}
}

func TestLookupProperty_CommentLinesIgnored(t *testing.T) {
	fsys := manifestFS(map[string]string{
		"lib/providers.properties": "! bang comment\n# hash comment\nexample.Widget=com.example.Impl\n",
	})
	value, ok, err := LookupProperty(fsys, "lib/providers.properties", "example.Widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "com.example.Impl" {
		t.Errorf("expected com.example.Impl, got %q", value)
	}
}
