package memory

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/data/errors"
	"github.com/mwantia/azvfs/storage"
)

type Handle struct {
	container *Container
	key       string
}

func (h *Handle) Key() string {
	return h.key
}

func (h *Handle) URL() string {
	return h.container.urlPrefix() + h.key
}

func (h *Handle) Exists(ctx context.Context) (bool, error) {
	h.container.mu.RLock()
	defer h.container.mu.RUnlock()

	_, ok := h.container.objects.Get(h.key)
	return ok, nil
}

func (h *Handle) Properties(ctx context.Context) (*storage.Properties, error) {
	h.container.mu.RLock()
	defer h.container.mu.RUnlock()

	obj, ok := h.container.objects.Get(h.key)
	if !ok {
		return nil, errors.NotFound(nil, h.key)
	}

	return &storage.Properties{
		Size:         int64(len(obj.data)),
		LastModified: obj.lastModified,
		ContentType:  string(data.DetectContentType(h.key)),
	}, nil
}

func (h *Handle) OpenRead(ctx context.Context) (io.ReadCloser, error) {
	h.container.mu.Lock()
	defer h.container.mu.Unlock()

	obj, ok := h.container.objects.Get(h.key)
	if !ok {
		return nil, errors.NotFound(nil, h.key)
	}

	h.container.record("OpenRead %s", h.key)

	data := make([]byte, len(obj.data))
	copy(data, obj.data)

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (h *Handle) OpenWrite(ctx context.Context, opts storage.WriteOptions) (io.WriteCloser, error) {
	h.container.mu.Lock()
	h.container.record("OpenWrite %s", h.key)
	h.container.mu.Unlock()

	return &memWriter{handle: h, blockSize: opts.BlockSize}, nil
}

func (h *Handle) Delete(ctx context.Context) error {
	h.container.mu.Lock()
	defer h.container.mu.Unlock()

	if _, ok := h.container.objects.Get(h.key); !ok {
		return errors.NotFound(nil, h.key)
	}

	h.container.record("Delete %s", h.key)
	h.container.objects.Delete(h.key)

	return nil
}

func (h *Handle) CopyFromURL(ctx context.Context, sourceURL string) error {
	h.container.mu.Lock()
	h.container.record("CopyFromURL %s", h.key)
	h.container.mu.Unlock()

	return h.copyFromURL(sourceURL)
}

func (h *Handle) BeginCopyFromURL(ctx context.Context, sourceURL string, pollInterval time.Duration) error {
	h.container.mu.Lock()
	h.container.record("BeginCopyFromURL %s", h.key)
	h.container.mu.Unlock()

	return h.copyFromURL(sourceURL)
}

func (h *Handle) CommittedBlocks(ctx context.Context) ([]storage.Block, error) {
	h.container.mu.Lock()
	defer h.container.mu.Unlock()

	obj, ok := h.container.objects.Get(h.key)
	if !ok {
		return nil, errors.NotFound(nil, h.key)
	}

	h.container.record("CommittedBlocks %s", h.key)

	blocks := make([]storage.Block, len(obj.blocks))
	copy(blocks, obj.blocks)

	return blocks, nil
}

func (h *Handle) StageBlockFromURL(ctx context.Context, blockID, sourceURL string, offset, count int64) error {
	source, sourceKey, err := resolveURL(sourceURL)
	if err != nil {
		return err
	}

	source.mu.RLock()
	obj, ok := source.objects.Get(sourceKey)
	if !ok {
		source.mu.RUnlock()
		return errors.NotFound(nil, sourceKey)
	}

	if offset < 0 || offset+count > int64(len(obj.data)) {
		source.mu.RUnlock()
		return fmt.Errorf("memory: range [%d,%d) outside '%s'", offset, offset+count, sourceKey)
	}

	chunk := make([]byte, count)
	copy(chunk, obj.data[offset:offset+count])
	source.mu.RUnlock()

	h.container.mu.Lock()
	defer h.container.mu.Unlock()

	h.container.record("StageBlockFromURL %s %s", h.key, blockID)

	staged, ok := h.container.staged[h.key]
	if !ok {
		staged = make(map[string][]byte)
		h.container.staged[h.key] = staged
	}
	staged[blockID] = chunk

	return nil
}

func (h *Handle) CommitBlockList(ctx context.Context, blockIDs []string) error {
	h.container.mu.Lock()
	defer h.container.mu.Unlock()

	h.container.record("CommitBlockList %s", h.key)

	staged := h.container.staged[h.key]

	var committed []byte
	obj := &object{blockData: make(map[string][]byte)}

	for _, id := range blockIDs {
		chunk, ok := staged[id]
		if !ok {
			// Committing an already-committed block keeps its bytes.
			if existing, exists := h.container.objects.Get(h.key); exists {
				chunk, ok = existing.blockData[id]
			}
			if !ok {
				return fmt.Errorf("memory: block '%s' not staged for '%s'", id, h.key)
			}
		}

		obj.blocks = append(obj.blocks, storage.Block{ID: id, Size: int64(len(chunk))})
		obj.blockData[id] = chunk
		committed = append(committed, chunk...)
	}

	obj.data = committed
	obj.lastModified = time.Now()

	h.container.objects.Set(h.key, obj)
	delete(h.container.staged, h.key)

	return nil
}

func (h *Handle) SignedURL(validity time.Duration) (string, error) {
	expiry := time.Now().UTC().Add(validity).Unix()
	return fmt.Sprintf("%s?sig=memory&sp=r&spr=https&se=%d", h.URL(), expiry), nil
}

func (h *Handle) copyFromURL(sourceURL string) error {
	source, sourceKey, err := resolveURL(sourceURL)
	if err != nil {
		return err
	}

	source.mu.RLock()
	obj, ok := source.objects.Get(sourceKey)
	if !ok {
		source.mu.RUnlock()
		return errors.NotFound(nil, sourceKey)
	}

	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	source.mu.RUnlock()

	h.container.mu.Lock()
	defer h.container.mu.Unlock()

	h.container.putLocked(h.key, data, 0)

	return nil
}

// memWriter buffers the full object and commits it on Close, mirroring the
// all-or-nothing visibility of the real block writer.
type memWriter struct {
	handle    *Handle
	blockSize int64
	buf       bytes.Buffer
	closed    bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("memory: writer already closed")
	}

	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.handle.container.mu.Lock()
	defer w.handle.container.mu.Unlock()

	data := make([]byte, w.buf.Len())
	copy(data, w.buf.Bytes())

	w.handle.container.putLocked(w.handle.key, data, w.blockSize)

	return nil
}

func newBlockID() string {
	id := uuid.New()
	return base64.StdEncoding.EncodeToString(id[:])
}
