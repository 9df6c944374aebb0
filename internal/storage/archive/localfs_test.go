package archive

import (
	"context"
	"testing"
)

func TestLocalFS_ImplementsStorage(t *testing.T) {
	var _ Storage = (*LocalFS)(nil)
}

func TestLocalFS_WriteRead(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewLocalFS(dir)
	if err != nil {
		t.Fatalf("NewLocalFS: %v", err)
	}

	ctx := context.Background()
	data := []byte(`{"ID":"abc"}`)

	if err := fs.Write(ctx, "backtests/sma_cross/AAPL/abc.json", data); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := fs.Read(ctx, "backtests/sma_cross/AAPL/abc.json")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if string(got) != string(data) {
		t.Errorf("got %q, want %q", got, data)
	}
}

func TestLocalFS_Exists(t *testing.T) {
	dir := t.TempDir()
	fs, _ := NewLocalFS(dir)
	ctx := context.Background()

	exists, _ := fs.Exists(ctx, "nonexistent.json")
	if exists {
		t.Error("expected false for nonexistent file")
	}

	fs.Write(ctx, "exists.json", []byte("{}"))
	exists, _ = fs.Exists(ctx, "exists.json")
	if !exists {
		t.Error("expected true for existing file")
	}
}

func TestLocalFS_List(t *testing.T) {
	dir := t.TempDir()
	fs, _ := NewLocalFS(dir)
	ctx := context.Background()

	fs.Write(ctx, "backtests/sma_cross/AAPL/a.json", []byte("a"))
	fs.Write(ctx, "backtests/sma_cross/AAPL/b.json", []byte("b"))
	fs.Write(ctx, "backtests/sma_cross/MSFT/c.json", []byte("c"))

	paths, err := fs.List(ctx, "backtests/sma_cross/AAPL")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(paths) != 2 {
		t.Errorf("expected 2 paths, got %d", len(paths))
	}
}

func TestLocalFS_Delete(t *testing.T) {
	dir := t.TempDir()
	fs, _ := NewLocalFS(dir)
	ctx := context.Background()

	fs.Write(ctx, "delete.json", []byte("{}"))
	fs.Delete(ctx, "delete.json")

	exists, _ := fs.Exists(ctx, "delete.json")
	if exists {
		t.Error("file should be deleted")
	}
}
