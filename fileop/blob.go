package fileop

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"gocloud.dev/blob"
)

// FetchBlob reads key from bucket into dst on fsys, with a byte bar
// sized by the blob's size. Errors of a missing key keep their
// gcerrors.NotFound code.
func FetchBlob(ctx context.Context, bucket *blob.Bucket, key string, fsys afero.Fs, dst string, opts Options) error {
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("open blob %q: %w", key, err)
	}
	defer r.Close()

	out, err := createFile(fsys, dst, fileMode)
	if err != nil {
		return err
	}

	bar := byteBar(r.Size(), "Fetching "+path.Base(key), opts)
	_, err = copyChunks(bar.ProxyWriter(out), r, opts.chunkSize(defaultChunkSize))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = fmt.Errorf("fetch blob %q: %w", key, err)
	}
	return finish(bar, err)
}

// PutBlob uploads src from fsys to key in bucket, with a byte bar
// sized by the file's size. On failure the blob write is aborted, so
// no partial blob is left behind.
func PutBlob(ctx context.Context, fsys afero.Fs, src string, bucket *blob.Bucket, key string, opts Options) error {
	info, err := statRegular(fsys, src)
	if err != nil {
		return err
	}
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	// canceling the writer's context aborts the write
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w, err := bucket.NewWriter(wctx, key, nil)
	if err != nil {
		return fmt.Errorf("create blob %q: %w", key, err)
	}

	bar := byteBar(info.Size(), "Uploading "+filepath.Base(src), opts)
	_, err = copyChunks(bar.ProxyWriter(w), in, opts.chunkSize(defaultChunkSize))
	if err != nil {
		cancel()
		_ = w.Close()
		return finish(bar, fmt.Errorf("put blob %q: %w", key, err))
	}
	if err := w.Close(); err != nil {
		return finish(bar, fmt.Errorf("put blob %q: %w", key, err))
	}
	return finish(bar, nil)
}
