// Package azureblob implements the storage surface on Azure Blob Storage
// with the track-2 Azure SDK. One Container wraps one container client and
// is safe for concurrent use.
package azureblob

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/mwantia/azvfs/storage"
)

// DefaultEndpointSuffix is the public host suffix of storage accounts.
const DefaultEndpointSuffix = "blob.core.windows.net"

type Config struct {
	Account    string
	AccountKey string
	Container  string
	// Endpoint overrides the account endpoint, e.g. for the emulator.
	// Empty selects https://{account}.blob.core.windows.net.
	Endpoint string
}

type Container struct {
	client     *container.Client
	credential *azblob.SharedKeyCredential

	account string
	name    string
}

// NewContainer connects to one container with shared-key credentials. No
// network call is made; the first blob operation validates the connection.
func NewContainer(cfg Config) (*Container, error) {
	if cfg.Account == "" || cfg.Container == "" {
		return nil, fmt.Errorf("azureblob: account and container are required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.%s", cfg.Account, DefaultEndpointSuffix)
	}

	credential, err := azblob.NewSharedKeyCredential(cfg.Account, cfg.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("azureblob: invalid credentials: %w", err)
	}

	containerURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), cfg.Container)
	client, err := container.NewClientWithSharedKeyCredential(containerURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("azureblob: create container client: %w", err)
	}

	return &Container{
		client:     client,
		credential: credential,
		account:    cfg.Account,
		name:       cfg.Container,
	}, nil
}

func (c *Container) Name() string {
	return c.name
}

func (c *Container) Account() string {
	return c.account
}

// Handle returns a handle for the given container-scoped key. Creation is
// local; no request is issued.
func (c *Container) Handle(key string) storage.Handle {
	return &Handle{
		client:     c.client.NewBlockBlobClient(key),
		credential: c.credential,
		container:  c.name,
		key:        key,
	}
}

// ListHierarchy lists entries sharing the prefix, grouped under the "/"
// delimiter so one level of virtual folders comes back as prefix entries.
func (c *Container) ListHierarchy(ctx context.Context, prefix string, maxResults int32) ([]storage.ListEntry, error) {
	opts := &container.ListBlobsHierarchyOptions{}
	if prefix != "" {
		opts.Prefix = &prefix
	}
	if maxResults > 0 {
		opts.MaxResults = &maxResults
	}

	var entries []storage.ListEntry

	pager := c.client.NewListBlobsHierarchyPager("/", opts)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("azureblob: list '%s': %w", prefix, err)
		}

		for _, p := range page.Segment.BlobPrefixes {
			if p.Name == nil {
				continue
			}
			entries = append(entries, storage.ListEntry{Name: *p.Name, IsPrefix: true})
		}

		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}

			entry := storage.ListEntry{Name: *item.Name}
			if item.Properties != nil && item.Properties.ContentLength != nil {
				entry.Size = *item.Properties.ContentLength
			}
			entries = append(entries, entry)
		}

		if maxResults > 0 && len(entries) >= int(maxResults) {
			entries = entries[:maxResults]
			break
		}
	}

	return entries, nil
}
