package azureblob

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"

	"github.com/mwantia/azvfs/data/errors"
	"github.com/mwantia/azvfs/storage"
)

// sasStartSkew backdates signed-url start times to absorb clock drift
// between the caller and the store.
const sasStartSkew = 10 * time.Minute

type Handle struct {
	client     *blockblob.Client
	credential *azblob.SharedKeyCredential
	container  string
	key        string
}

func (h *Handle) Key() string {
	return h.key
}

func (h *Handle) URL() string {
	return h.client.URL()
}

func (h *Handle) Exists(ctx context.Context) (bool, error) {
	_, err := h.client.GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (h *Handle) Properties(ctx context.Context) (*storage.Properties, error) {
	resp, err := h.client.GetProperties(ctx, nil)
	if err != nil {
		return nil, h.wrapNotFound(err)
	}

	props := &storage.Properties{}
	if resp.ContentLength != nil {
		props.Size = *resp.ContentLength
	}
	if resp.LastModified != nil {
		props.LastModified = *resp.LastModified
	}
	if resp.ContentType != nil {
		props.ContentType = *resp.ContentType
	}

	return props, nil
}

func (h *Handle) OpenRead(ctx context.Context) (io.ReadCloser, error) {
	resp, err := h.client.DownloadStream(ctx, nil)
	if err != nil {
		return nil, h.wrapNotFound(err)
	}

	return resp.Body, nil
}

func (h *Handle) OpenWrite(ctx context.Context, opts storage.WriteOptions) (io.WriteCloser, error) {
	return newBlockWriter(ctx, h.client, h.key, opts), nil
}

func (h *Handle) Delete(ctx context.Context) error {
	_, err := h.client.Delete(ctx, &blob.DeleteOptions{
		DeleteSnapshots: to.Ptr(blob.DeleteSnapshotsOptionTypeInclude),
	})
	if err != nil {
		return h.wrapNotFound(err)
	}

	return nil
}

func (h *Handle) CopyFromURL(ctx context.Context, sourceURL string) error {
	_, err := h.client.CopyFromURL(ctx, sourceURL, nil)
	return err
}

// BeginCopyFromURL starts an asynchronous copy and polls the destination
// properties until the store reports a terminal status.
func (h *Handle) BeginCopyFromURL(ctx context.Context, sourceURL string, pollInterval time.Duration) error {
	if _, err := h.client.StartCopyFromURL(ctx, sourceURL, nil); err != nil {
		return err
	}

	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	for {
		resp, err := h.client.GetProperties(ctx, nil)
		if err != nil {
			return h.wrapNotFound(err)
		}

		if resp.CopyStatus == nil {
			return fmt.Errorf("azureblob: copy to '%s' reported no status", h.key)
		}

		switch *resp.CopyStatus {
		case blob.CopyStatusTypeSuccess:
			return nil
		case blob.CopyStatusTypePending:
		default:
			description := ""
			if resp.CopyStatusDescription != nil {
				description = ": " + *resp.CopyStatusDescription
			}

			return fmt.Errorf("azureblob: copy to '%s' ended with status '%s'%s", h.key, *resp.CopyStatus, description)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (h *Handle) CommittedBlocks(ctx context.Context) ([]storage.Block, error) {
	resp, err := h.client.GetBlockList(ctx, blockblob.BlockListTypeCommitted, nil)
	if err != nil {
		return nil, h.wrapNotFound(err)
	}

	blocks := make([]storage.Block, 0, len(resp.BlockList.CommittedBlocks))
	for _, committed := range resp.BlockList.CommittedBlocks {
		block := storage.Block{}
		if committed.Name != nil {
			block.ID = *committed.Name
		}
		if committed.Size != nil {
			block.Size = *committed.Size
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

func (h *Handle) StageBlockFromURL(ctx context.Context, blockID, sourceURL string, offset, count int64) error {
	_, err := h.client.StageBlockFromURL(ctx, blockID, sourceURL, &blockblob.StageBlockFromURLOptions{
		Range: blob.HTTPRange{Offset: offset, Count: count},
	})
	return err
}

func (h *Handle) CommitBlockList(ctx context.Context, blockIDs []string) error {
	_, err := h.client.CommitBlockList(ctx, blockIDs, nil)
	return err
}

// SignedURL signs a read-only, HTTPS-only url for this blob with the
// shared-key credential. The start time is backdated by sasStartSkew.
func (h *Handle) SignedURL(validity time.Duration) (string, error) {
	now := time.Now().UTC()

	values := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     now.Add(-sasStartSkew),
		ExpiryTime:    now.Add(validity),
		Permissions:   to.Ptr(sas.BlobPermissions{Read: true}).String(),
		ContainerName: h.container,
		BlobName:      h.key,
	}

	query, err := values.SignWithSharedKey(h.credential)
	if err != nil {
		return "", fmt.Errorf("azureblob: sign url for '%s': %w", h.key, err)
	}

	return h.client.URL() + "?" + query.Encode(), nil
}

func (h *Handle) wrapNotFound(err error) error {
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return errors.NotFound(err, h.key)
	}

	return err
}
