package azureblob

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/google/uuid"

	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/storage"
)

const (
	defaultWriteBlockSize   = 8 * 1024 * 1024
	defaultWriteConcurrency = 4
)

var errWriterClosed = errors.New("azureblob: writer already closed")

// blockWriter stages fixed-size blocks as data arrives and commits the
// ordered block list on Close. Nothing is visible remotely before the
// commit. Block IDs are random uuids in the fixed-length base64 form the
// store requires; IDs are recorded in write order while staging itself runs
// on a bounded number of goroutines.
type blockWriter struct {
	ctx    context.Context
	client *blockblob.Client
	key    string

	blockSize int64
	buf       bytes.Buffer
	blockIDs  []string

	sem chan struct{}
	wg  sync.WaitGroup

	mu       sync.Mutex
	stageErr error

	closed bool
}

func newBlockWriter(ctx context.Context, client *blockblob.Client, key string, opts storage.WriteOptions) *blockWriter {
	blockSize := opts.BlockSize
	if blockSize <= 0 {
		blockSize = defaultWriteBlockSize
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultWriteConcurrency
	}

	return &blockWriter{
		ctx:       ctx,
		client:    client,
		key:       key,
		blockSize: blockSize,
		sem:       make(chan struct{}, concurrency),
	}
}

func (w *blockWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errWriterClosed
	}
	if err := w.err(); err != nil {
		return 0, err
	}

	w.buf.Write(p)

	for int64(w.buf.Len()) >= w.blockSize {
		block := make([]byte, w.blockSize)
		_, _ = w.buf.Read(block)

		if err := w.stage(block); err != nil {
			return len(p), err
		}
	}

	return len(p), nil
}

// Close stages the final partial block, waits for in-flight staging and
// commits the block list. An empty write sequence commits an empty blob.
func (w *blockWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.err() == nil && w.buf.Len() > 0 {
		tail := make([]byte, w.buf.Len())
		_, _ = w.buf.Read(tail)
		_ = w.stage(tail)
	}

	w.wg.Wait()

	if err := w.err(); err != nil {
		return err
	}

	contentType := string(data.DetectContentType(w.key))
	_, err := w.client.CommitBlockList(w.ctx, w.blockIDs, &blockblob.CommitBlockListOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	return err
}

func (w *blockWriter) stage(block []byte) error {
	id := uuid.New()
	blockID := base64.StdEncoding.EncodeToString(id[:])
	w.blockIDs = append(w.blockIDs, blockID)

	w.sem <- struct{}{}
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() { <-w.sem }()

		body := streaming.NopCloser(bytes.NewReader(block))
		if _, err := w.client.StageBlock(w.ctx, blockID, body, nil); err != nil {
			w.setErr(err)
		}
	}()

	return w.err()
}

func (w *blockWriter) err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.stageErr
}

func (w *blockWriter) setErr(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stageErr == nil {
		w.stageErr = err
	}
}
