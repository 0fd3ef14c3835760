package azure

import (
	"context"
	"io"
	"time"

	"github.com/mwantia/azvfs"
	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/data/errors"
	"github.com/mwantia/azvfs/storage"
)

// defaultCopyPollInterval paces completion polls of an asynchronous
// server-side copy.
const defaultCopyPollInterval = time.Second

// CopyFrom copies the source tree selected by selector onto this object as
// the destination root. Relative positions under the source base map onto
// the same positions under this object. Each entry independently picks the
// cheapest route: folder declaration, server-side copy within the same
// account, or streaming through this process.
func (f *FileObject) CopyFrom(ctx context.Context, source azvfs.FileObject, selector azvfs.FileSelector) error {
	exists, err := source.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return errors.MissingSource(source.Name().URI())
	}

	f.Attach()

	selected, err := azvfs.FindFiles(ctx, source, selector, false)
	if err != nil {
		return err
	}

	for _, src := range selected {
		if err := f.copyEntry(ctx, source, src); err != nil {
			return err
		}
	}

	return nil
}

// copyEntry copies one selected source entry to its position under this
// destination root.
func (f *FileObject) copyEntry(ctx context.Context, base, src azvfs.FileObject) error {
	srcType, err := src.Type(ctx)
	if err != nil {
		return errors.CopyFailed(err, src.Name().URI(), f.name.URI())
	}

	rel := data.ToRelativePath(src.Name().Path(), base.Name().Path())
	dest := f.resolveDescendant(rel)

	if err := f.copyOne(ctx, src, srcType, dest); err != nil {
		return errors.CopyFailed(err, src.Name().URI(), dest.name.URI())
	}

	return nil
}

func (f *FileObject) resolveDescendant(rel string) *FileObject {
	if rel == "" {
		return f
	}

	name := f.name.CreateName(data.JoinPath(f.name.Path(), rel), data.FileTypeImaginary)
	return f.fs.ResolveName(name)
}

func (f *FileObject) copyOne(ctx context.Context, src azvfs.FileObject, srcType data.FileType, dest *FileObject) error {
	dest.Attach()

	destType, err := dest.Type(ctx)
	if err != nil {
		return err
	}

	// A destination of the wrong kind is cleared first so a file never
	// shadows a folder of the same name, or the reverse.
	if destType != data.FileTypeImaginary && destType != srcType {
		if err := dest.DeleteAll(ctx); err != nil {
			return err
		}
	}

	switch {
	case srcType.HasChildren():
		return dest.CreateFolder(ctx)

	case srcType.HasContent():
		if f.fs.canCopyServerSide(src) {
			return dest.copyServerSide(ctx, src.(azvfs.ServerCopySource))
		}

		return dest.copyStream(ctx, src)

	default:
		return errors.UnsupportedCopySource(src.Name().URI())
	}
}

// canCopyServerSide reports whether the store can copy the source without
// routing bytes through this process. The source must expose its account
// identity and live in the same account as the destination; anything else
// streams.
func (fs *FileSystem) canCopyServerSide(src azvfs.FileObject) bool {
	serverSource, ok := src.(azvfs.ServerCopySource)
	if !ok {
		return false
	}

	account, ok := serverSource.AccountIdentity()
	return ok && account == fs.Account()
}

// copyServerSide copies the source inside the store. Small objects go
// through one synchronous copy call; objects above the configured threshold
// are rebuilt block by block so the store never rejects the copy for size.
func (f *FileObject) copyServerSide(ctx context.Context, src azvfs.ServerCopySource) error {
	srcObject := src.(azvfs.FileObject)

	size, err := srcObject.ContentSize(ctx)
	if err != nil {
		return err
	}

	validity := time.Duration(f.fs.config.SignedURLValiditySeconds) * time.Second
	sourceURL, err := src.SignedURL(validity)
	if err != nil {
		return err
	}

	if size > f.fs.serverCopyThresholdBytes() {
		err = f.copyStagedBlocks(ctx, src, sourceURL)
	} else {
		err = f.handle.CopyFromURL(ctx, sourceURL)
	}
	if err != nil {
		return err
	}

	f.invalidate()
	_, err = f.Type(ctx)

	return err
}

// copyStagedBlocks mirrors the source's committed block layout into the
// destination by url reference, then commits the rebuilt list. A source
// uploaded without block staging has no committed blocks to mirror; those
// fall back to one asynchronous whole-blob copy.
func (f *FileObject) copyStagedBlocks(ctx context.Context, src azvfs.ServerCopySource, sourceURL string) error {
	blocks, err := src.CommittedBlocks(ctx)
	if err != nil {
		return err
	}

	if len(blocks) == 0 {
		return f.handle.BeginCopyFromURL(ctx, sourceURL, defaultCopyPollInterval)
	}

	blockIDs := make([]string, 0, len(blocks))
	var offset int64
	for _, block := range blocks {
		if err := f.handle.StageBlockFromURL(ctx, block.ID, sourceURL, offset, block.Size); err != nil {
			return err
		}

		blockIDs = append(blockIDs, block.ID)
		offset += block.Size
	}

	return f.handle.CommitBlockList(ctx, blockIDs)
}

// copyStream routes the source bytes through this process. The size check
// runs before the first byte so an impossible upload fails immediately.
func (f *FileObject) copyStream(ctx context.Context, src azvfs.FileObject) error {
	size, err := src.ContentSize(ctx)
	if err != nil {
		return err
	}

	blockSize, err := f.fs.blockSizeFor(size)
	if err != nil {
		return err
	}

	in, err := src.OpenRead(ctx)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := f.handle.OpenWrite(ctx, storage.WriteOptions{
		BlockSize:   blockSize,
		Concurrency: uploadConcurrency,
	})
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	f.invalidate()
	_, err = f.Type(ctx)

	return err
}
