// Package memory implements the storage surface in process memory. It
// mirrors the flat-namespace semantics of the real store, including
// hierarchical listing, block staging and copy-by-url, and records the
// operations it serves so tests can observe how the provider routed a copy.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/btree"

	"github.com/mwantia/azvfs/storage"
)

// EndpointSuffix mirrors the public host suffix so in-memory urls look like
// real blob urls and can be resolved back to their container.
const EndpointSuffix = "blob.core.windows.net"

var registry = struct {
	mu         sync.RWMutex
	containers map[string]*Container
}{containers: make(map[string]*Container)}

// object is one stored blob: full content plus its committed block layout.
type object struct {
	data         []byte
	lastModified time.Time
	blocks       []storage.Block
	blockData    map[string][]byte
}

type Container struct {
	mu sync.RWMutex

	account string
	name    string

	objects *btree.Map[string, *object]
	staged  map[string]map[string][]byte

	operations []string
}

// NewContainer creates an empty in-memory container and registers it so
// copy-by-url calls can resolve source urls across containers.
func NewContainer(account, name string) *Container {
	c := &Container{
		account: account,
		name:    name,
		objects: btree.NewMap[string, *object](0),
		staged:  make(map[string]map[string][]byte),
	}

	registry.mu.Lock()
	registry.containers[account+"/"+name] = c
	registry.mu.Unlock()

	return c
}

func (c *Container) Name() string {
	return c.name
}

func (c *Container) Account() string {
	return c.account
}

func (c *Container) Handle(key string) storage.Handle {
	return &Handle{container: c, key: key}
}

func (c *Container) ListHierarchy(ctx context.Context, prefix string, maxResults int32) ([]storage.ListEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var entries []storage.ListEntry
	lastPrefix := ""

	c.objects.Ascend(prefix, func(key string, obj *object) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}

		rest := key[len(prefix):]
		if idx := strings.Index(rest, "/"); idx >= 0 {
			// Child keys below the delimiter collapse into one prefix entry.
			group := prefix + rest[:idx+1]
			if group != lastPrefix {
				entries = append(entries, storage.ListEntry{Name: group, IsPrefix: true})
				lastPrefix = group
			}
		} else {
			entries = append(entries, storage.ListEntry{Name: key, Size: int64(len(obj.data))})
		}

		return maxResults <= 0 || len(entries) < int(maxResults)
	})

	return entries, nil
}

// Seed stores an object directly, splitting its content into committed
// blocks of the given size. A blockSize <= 0 stores the content as a single
// block.
func (c *Container) Seed(key string, data []byte, blockSize int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.putLocked(key, data, blockSize)
}

// Operations returns a copy of the recorded operation trace.
func (c *Container) Operations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ops := make([]string, len(c.operations))
	copy(ops, c.operations)

	return ops
}

// OperationCount counts recorded operations by name.
func (c *Container) OperationCount(name string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, op := range c.operations {
		if op == name || strings.HasPrefix(op, name+" ") {
			count++
		}
	}

	return count
}

// ResetOperations clears the recorded trace.
func (c *Container) ResetOperations() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.operations = c.operations[:0]
}

func (c *Container) record(format string, args ...any) {
	c.operations = append(c.operations, fmt.Sprintf(format, args...))
}

func (c *Container) urlPrefix() string {
	return fmt.Sprintf("https://%s.%s/%s/", c.account, EndpointSuffix, c.name)
}

func (c *Container) putLocked(key string, data []byte, blockSize int64) {
	obj := &object{
		data:         data,
		lastModified: time.Now(),
		blockData:    make(map[string][]byte),
	}

	if blockSize <= 0 {
		blockSize = int64(len(data))
	}

	for offset := int64(0); offset < int64(len(data)); offset += blockSize {
		end := min(offset+blockSize, int64(len(data)))
		chunk := data[offset:end]

		id := newBlockID()
		obj.blocks = append(obj.blocks, storage.Block{ID: id, Size: int64(len(chunk))})
		obj.blockData[id] = chunk
	}

	c.objects.Set(key, obj)
}

// resolveURL maps a (possibly signed) blob url back to its registered
// container and key.
func resolveURL(rawURL string) (*Container, string, error) {
	trimmed := rawURL
	if idx := strings.Index(trimmed, "?"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for _, c := range registry.containers {
		if strings.HasPrefix(trimmed, c.urlPrefix()) {
			return c, strings.TrimPrefix(trimmed, c.urlPrefix()), nil
		}
	}

	return nil, "", fmt.Errorf("memory: url '%s' does not address a known container", rawURL)
}
