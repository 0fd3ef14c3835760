package memory

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/mwantia/azvfs/storage"
)

func TestListHierarchyGrouping(t *testing.T) {
	c := NewContainer("listacct", "docs")
	c.Seed("a/one.txt", []byte("1"), 0)
	c.Seed("a/sub/two.txt", []byte("22"), 0)
	c.Seed("a/sub/three.txt", []byte("333"), 0)
	c.Seed("b.txt", []byte("4444"), 0)

	entries, err := c.ListHierarchy(context.Background(), "a/", 0)
	if err != nil {
		t.Fatalf("ListHierarchy failed: %v", err)
	}

	var leaves, prefixes []string
	for _, entry := range entries {
		if entry.IsPrefix {
			prefixes = append(prefixes, entry.Name)
		} else {
			leaves = append(leaves, entry.Name)
		}
	}

	if len(leaves) != 1 || leaves[0] != "a/one.txt" {
		t.Errorf("leaves = %v, want [a/one.txt]", leaves)
	}
	if len(prefixes) != 1 || prefixes[0] != "a/sub/" {
		t.Errorf("prefixes = %v, want [a/sub/]", prefixes)
	}
}

func TestListHierarchyMaxResults(t *testing.T) {
	c := NewContainer("limitacct", "docs")
	c.Seed("k1", []byte("1"), 0)
	c.Seed("k2", []byte("2"), 0)
	c.Seed("k3", []byte("3"), 0)

	entries, err := c.ListHierarchy(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("ListHierarchy failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestWriterCommitsBlocks(t *testing.T) {
	c := NewContainer("writeacct", "docs")
	h := c.Handle("out.bin")

	content := bytes.Repeat([]byte("x"), 2500)

	w, err := h.OpenWrite(context.Background(), storage.WriteOptions{BlockSize: 1000})
	if err != nil {
		t.Fatalf("OpenWrite failed: %v", err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	blocks, err := h.CommittedBlocks(context.Background())
	if err != nil {
		t.Fatalf("CommittedBlocks failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	var total int64
	for _, block := range blocks {
		total += block.Size
	}
	if total != int64(len(content)) {
		t.Errorf("block sizes sum to %d, want %d", total, len(content))
	}

	r, err := h.OpenRead(context.Background())
	if err != nil {
		t.Fatalf("OpenRead failed: %v", err)
	}
	defer r.Close()

	read, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !bytes.Equal(read, content) {
		t.Error("read back content does not match")
	}
}

func TestStageAndCommitFromURL(t *testing.T) {
	c := NewContainer("stageacct", "docs")
	c.Seed("source.bin", []byte("abcdefghij"), 5)

	src := c.Handle("source.bin")
	url, err := src.SignedURL(0)
	if err != nil {
		t.Fatalf("SignedURL failed: %v", err)
	}

	dest := c.Handle("dest.bin")
	if err := dest.StageBlockFromURL(context.Background(), "b1", url, 0, 5); err != nil {
		t.Fatalf("StageBlockFromURL failed: %v", err)
	}
	if err := dest.StageBlockFromURL(context.Background(), "b2", url, 5, 5); err != nil {
		t.Fatalf("StageBlockFromURL failed: %v", err)
	}
	if err := dest.CommitBlockList(context.Background(), []string{"b1", "b2"}); err != nil {
		t.Fatalf("CommitBlockList failed: %v", err)
	}

	props, err := dest.Properties(context.Background())
	if err != nil {
		t.Fatalf("Properties failed: %v", err)
	}
	if props.Size != 10 {
		t.Errorf("size = %d, want 10", props.Size)
	}
}

func TestCopyFromURLAcrossContainers(t *testing.T) {
	src := NewContainer("srcacct", "docs")
	dest := NewContainer("destacct", "docs")
	src.Seed("file.txt", []byte("cross container"), 0)

	url, err := src.Handle("file.txt").SignedURL(0)
	if err != nil {
		t.Fatalf("SignedURL failed: %v", err)
	}

	h := dest.Handle("copied.txt")
	if err := h.CopyFromURL(context.Background(), url); err != nil {
		t.Fatalf("CopyFromURL failed: %v", err)
	}

	r, err := h.OpenRead(context.Background())
	if err != nil {
		t.Fatalf("OpenRead failed: %v", err)
	}
	defer r.Close()

	read, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(read) != "cross container" {
		t.Errorf("copied content = %q", read)
	}
}

func TestCommittedBlocksRecordsConcurrently(t *testing.T) {
	c := NewContainer("concacct", "docs")
	c.Seed("blob.bin", bytes.Repeat([]byte{7}, 4000), 1000)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := c.Handle("blob.bin").CommittedBlocks(context.Background()); err != nil {
				t.Errorf("CommittedBlocks failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := c.OperationCount("CommittedBlocks"); got != 8 {
		t.Errorf("CommittedBlocks recorded %d times, want 8", got)
	}
}
