package azure

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mwantia/azvfs"
	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/log"
	"github.com/mwantia/azvfs/storage/memory"
)

func newTestFS(t *testing.T, account, container string) (*FileSystem, *memory.Container) {
	t.Helper()

	store := memory.NewContainer(account, container)
	fs, err := NewFileSystem(store)
	if err != nil {
		t.Fatalf("NewFileSystem failed: %v", err)
	}
	t.Cleanup(func() { fs.Close() })

	return fs, store
}

func resolve(t *testing.T, fs *FileSystem, uri string) *FileObject {
	t.Helper()

	obj, err := fs.Resolve(uri)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", uri, err)
	}

	return obj
}

func TestFileObjectTypeInference(t *testing.T) {
	fs, store := newTestFS(t, "types", "docs")
	store.Seed("reports/2024/summary.txt", []byte("summary"), 0)
	store.Seed("readme.md", []byte("readme"), 0)

	tests := []struct {
		name string
		uri  string
		want data.FileType
	}{
		{"blob key is a file", "azb://types.blob.core.windows.net/docs/readme.md", data.FileTypeFile},
		{"nested blob key is a file", "azb://types.blob.core.windows.net/docs/reports/2024/summary.txt", data.FileTypeFile},
		{"prefix of blobs is a folder", "azb://types.blob.core.windows.net/docs/reports", data.FileTypeFolder},
		{"intermediate prefix is a folder", "azb://types.blob.core.windows.net/docs/reports/2024", data.FileTypeFolder},
		{"unmatched key is imaginary", "azb://types.blob.core.windows.net/docs/missing.txt", data.FileTypeImaginary},
		{"partial segment is imaginary", "azb://types.blob.core.windows.net/docs/read", data.FileTypeImaginary},
		{"root is a folder", "azb://types.blob.core.windows.net/docs/", data.FileTypeFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := resolve(t, fs, tt.uri)
			got, err := obj.Type(context.Background())
			if err != nil {
				t.Fatalf("Type failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Type = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileObjectDeclaredFolderIsTrusted(t *testing.T) {
	fs, _ := newTestFS(t, "declared", "docs")

	// No remote entries exist, the trailing slash alone declares the
	// folder.
	obj := resolve(t, fs, "azb://declared.blob.core.windows.net/docs/empty/")

	got, err := obj.Type(context.Background())
	if err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if got != data.FileTypeFolder {
		t.Errorf("Type = %v for declared folder, want folder", got)
	}
}

func TestFileObjectImaginaryIsReverified(t *testing.T) {
	fs, store := newTestFS(t, "reverify", "docs")
	obj := resolve(t, fs, "azb://reverify.blob.core.windows.net/docs/late.txt")

	got, err := obj.Type(context.Background())
	if err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if got != data.FileTypeImaginary {
		t.Fatalf("Type = %v before seed, want imaginary", got)
	}

	// Content lands under the key out of band; the cached imaginary must
	// not stick.
	store.Seed("late.txt", []byte("now real"), 0)

	got, err = obj.Type(context.Background())
	if err != nil {
		t.Fatalf("Type failed after seed: %v", err)
	}
	if got != data.FileTypeFile {
		t.Errorf("Type = %v after seed, want file", got)
	}
}

func TestFileObjectWriteThenRead(t *testing.T) {
	fs, _ := newTestFS(t, "write", "docs")
	obj := resolve(t, fs, "azb://write.blob.core.windows.net/docs/out/data.bin")

	content := bytes.Repeat([]byte("payload-"), 1024)

	w, err := obj.OpenWrite(context.Background(), false)
	if err != nil {
		t.Fatalf("OpenWrite failed: %v", err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, err := obj.Type(context.Background())
	if err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if got != data.FileTypeFile {
		t.Fatalf("Type = %v after write, want file", got)
	}

	size, err := obj.ContentSize(context.Background())
	if err != nil {
		t.Fatalf("ContentSize failed: %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("ContentSize = %d, want %d", size, len(content))
	}

	r, err := obj.OpenRead(context.Background())
	if err != nil {
		t.Fatalf("OpenRead failed: %v", err)
	}
	defer r.Close()

	read, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !bytes.Equal(read, content) {
		t.Error("read content does not match written content")
	}
}

func TestFileObjectAppendIsRejected(t *testing.T) {
	fs, _ := newTestFS(t, "append", "docs")
	obj := resolve(t, fs, "azb://append.blob.core.windows.net/docs/log.txt")

	if _, err := obj.OpenWrite(context.Background(), true); err == nil {
		t.Error("OpenWrite(append) succeeded, want error")
	}
}

func TestFileObjectChildren(t *testing.T) {
	fs, store := newTestFS(t, "children", "docs")
	store.Seed("a/one.txt", []byte("1"), 0)
	store.Seed("a/two.txt", []byte("2"), 0)
	store.Seed("a/sub/three.txt", []byte("3"), 0)
	store.Seed("b/other.txt", []byte("4"), 0)

	folder := resolve(t, fs, "azb://children.blob.core.windows.net/docs/a/")

	names, err := folder.ChildNames(context.Background())
	if err != nil {
		t.Fatalf("ChildNames failed: %v", err)
	}

	want := []string{"one.txt", "sub/", "two.txt"}
	slices.Sort(names)
	if !slices.Equal(names, want) {
		t.Errorf("ChildNames = %v, want %v", names, want)
	}

	children, err := folder.Children(context.Background())
	if err != nil {
		t.Fatalf("Children failed: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("Children returned %d objects, want 3", len(children))
	}

	var paths []string
	for _, child := range children {
		paths = append(paths, child.Name().Path())
	}
	slices.Sort(paths)

	wantPaths := []string{"/a/one.txt", "/a/sub", "/a/two.txt"}
	if !slices.Equal(paths, wantPaths) {
		t.Errorf("child paths = %v, want %v", paths, wantPaths)
	}
}

func TestFileObjectChildrenOfFileFails(t *testing.T) {
	fs, store := newTestFS(t, "leafchild", "docs")
	store.Seed("file.txt", []byte("x"), 0)

	obj := resolve(t, fs, "azb://leafchild.blob.core.windows.net/docs/file.txt")
	if _, err := obj.Children(context.Background()); err == nil {
		t.Error("Children of a file succeeded, want error")
	}
}

func TestFileObjectCreateFolderIsVirtual(t *testing.T) {
	fs, store := newTestFS(t, "mkdir", "docs")
	obj := resolve(t, fs, "azb://mkdir.blob.core.windows.net/docs/new-folder/")

	if err := obj.CreateFolder(context.Background()); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	// Nothing may be written; folders exist only through descendants.
	if got := store.OperationCount("OpenWrite"); got != 0 {
		t.Errorf("CreateFolder wrote %d objects, want 0", got)
	}
}

func TestFileObjectDelete(t *testing.T) {
	fs, store := newTestFS(t, "delete", "docs")
	store.Seed("doomed.txt", []byte("bye"), 0)

	obj := resolve(t, fs, "azb://delete.blob.core.windows.net/docs/doomed.txt")

	if err := obj.Delete(context.Background()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := obj.Type(context.Background())
	if err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if got != data.FileTypeImaginary {
		t.Errorf("Type = %v after delete, want imaginary", got)
	}

	// Deleting again must be a no-op, not a second store call.
	if err := obj.Delete(context.Background()); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if got := store.OperationCount("Delete"); got != 1 {
		t.Errorf("store Delete called %d times, want 1", got)
	}
}

func TestFileObjectDeleteAll(t *testing.T) {
	fs, store := newTestFS(t, "deleteall", "docs")
	store.Seed("tree/a.txt", []byte("a"), 0)
	store.Seed("tree/sub/b.txt", []byte("b"), 0)
	store.Seed("tree/sub/deep/c.txt", []byte("c"), 0)
	store.Seed("keep.txt", []byte("keep"), 0)

	folder := resolve(t, fs, "azb://deleteall.blob.core.windows.net/docs/tree/")
	if err := folder.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}

	exists, err := folder.Exists(context.Background())
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("folder still exists after DeleteAll")
	}

	kept := resolve(t, fs, "azb://deleteall.blob.core.windows.net/docs/keep.txt")
	exists, err = kept.Exists(context.Background())
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("sibling outside the tree was deleted")
	}

	if got := store.OperationCount("Delete"); got != 3 {
		t.Errorf("store Delete called %d times, want 3", got)
	}
}

func TestFileObjectLastModified(t *testing.T) {
	fs, store := newTestFS(t, "modified", "docs")
	obj := resolve(t, fs, "azb://modified.blob.core.windows.net/docs/stamp.txt")

	millis, err := obj.LastModified(context.Background())
	if err != nil {
		t.Fatalf("LastModified failed: %v", err)
	}
	if millis != 0 {
		t.Errorf("LastModified = %d for absent object, want 0", millis)
	}

	store.Seed("stamp.txt", []byte("v1"), 0)

	first, err := obj.LastModified(context.Background())
	if err != nil {
		t.Fatalf("LastModified failed: %v", err)
	}
	if first <= 0 {
		t.Fatalf("LastModified = %d for existing object, want > 0", first)
	}

	store.Seed("stamp.txt", []byte("v2"), 0)

	second, err := obj.LastModified(context.Background())
	if err != nil {
		t.Fatalf("LastModified failed: %v", err)
	}
	if second < first {
		t.Errorf("LastModified went backwards: %d then %d", first, second)
	}

	// Accepted but ignored.
	if err := obj.SetLastModified(context.Background(), 12345); err != nil {
		t.Fatalf("SetLastModified failed: %v", err)
	}
}

func TestFileSystemResolveCachesByPath(t *testing.T) {
	fs, _ := newTestFS(t, "cache", "docs")

	first := resolve(t, fs, "azb://cache.blob.core.windows.net/docs/shared.txt")
	second := resolve(t, fs, "azb://cache.blob.core.windows.net/docs/shared.txt")

	if first != second {
		t.Error("Resolve returned distinct objects for the same path")
	}
}

func TestFileObjectTypePrefersFolderOverLeaf(t *testing.T) {
	fs, store := newTestFS(t, "dual", "docs")
	store.Seed("report", []byte("leaf"), 0)
	store.Seed("report/detail.txt", []byte("child"), 0)

	// The key exists both as a blob and as a prefix with children; the
	// folder reading wins no matter which entry the listing yields first.
	obj := resolve(t, fs, "azb://dual.blob.core.windows.net/docs/report")

	got, err := obj.Type(context.Background())
	if err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if got != data.FileTypeFolder {
		t.Errorf("Type = %v, want %v", got, data.FileTypeFolder)
	}
}

func TestFileObjectLifecycleLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "azvfs.log")

	store := memory.NewContainer("logging", "docs")
	store.Seed("notes.txt", []byte("hello"), 0)

	fs, err := NewFileSystem(store, azvfs.WithLogger(log.NewLogger("azvfs", log.Debug, logFile, true)))
	if err != nil {
		t.Fatalf("NewFileSystem failed: %v", err)
	}

	obj := resolve(t, fs, "azb://logging.blob.core.windows.net/docs/notes.txt")
	if _, err := obj.Type(context.Background()); err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if err := obj.Delete(context.Background()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := fs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file failed: %v", err)
	}

	for _, want := range []string{"attached", "inferred", "deleted", "detached"} {
		if !strings.Contains(string(logged), want) {
			t.Errorf("log output %q does not contain %q", logged, want)
		}
	}
}

func TestFileSystemResolveRejectsForeignContainer(t *testing.T) {
	fs, _ := newTestFS(t, "local", "docs")

	if _, err := fs.Resolve("azb://other.blob.core.windows.net/docs/file.txt"); err == nil {
		t.Error("Resolve accepted a uri for a foreign account")
	}
	if _, err := fs.Resolve("azb://local.blob.core.windows.net/other/file.txt"); err == nil {
		t.Error("Resolve accepted a uri for a foreign container")
	}
}
