package azure

import (
	"github.com/mwantia/azvfs/data/errors"
)

const (
	mebibyte = 1 << 20

	// maxBlockCount is the store's hard limit on blocks per blob.
	maxBlockCount = 50000
	// maxBlockSize is the store's hard limit on one staged block.
	maxBlockSize = 100 * mebibyte
	// maxBlobSize is the largest blob the staged-block policy can produce.
	maxBlobSize = int64(maxBlockSize) * maxBlockCount

	uploadConcurrency = 4
)

// blockSizeFor picks the staged block size for an upload of the given total
// size. The configured default holds until the blob would need more than
// maxBlockCount blocks, then the size scales up so the count stays inside
// the limit. Sizes past maxBlobSize fail before any byte is transferred.
func (fs *FileSystem) blockSizeFor(size int64) (int64, error) {
	if size > maxBlobSize {
		return 0, errors.SizeLimitExceeded(size, maxBlobSize)
	}

	blockSize := int64(fs.config.DefaultBlockSizeMB) * mebibyte
	if size < blockSize*maxBlockCount {
		return blockSize, nil
	}

	return (size + maxBlockCount - 1) / maxBlockCount, nil
}

func (fs *FileSystem) serverCopyThresholdBytes() int64 {
	return int64(fs.config.ServerSideCopyThresholdMB) * mebibyte
}
