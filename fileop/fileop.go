// Package fileop copies files, directory trees, HTTP resources and
// blobs, reporting transferred bytes on a progress bar.
//
// Every operation works on an afero.Fs, so callers and tests can swap
// the OS filesystem for an in-memory one. A bar is aborted when its
// operation fails and closed otherwise.
package fileop

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/vbauerster/iterbar"
)

const (
	// defaultChunkSize is used for filesystem and blob copies.
	defaultChunkSize = 1 << 20
	// defaultDownloadChunkSize is used for HTTP bodies.
	defaultDownloadChunkSize = 8192

	fileMode = 0o644
	dirMode  = 0o755
)

var (
	// ErrNotRegular is returned when a file operation is given something
	// other than a regular file.
	ErrNotRegular = errors.New("not a regular file")
	// ErrNotDir is returned by CopyTree when source is not a directory.
	ErrNotDir = errors.New("not a directory")
	// ErrHTTPStatus is returned by Download on a non 2xx response.
	ErrHTTPStatus = errors.New("unexpected http status")
)

// Options tune an operation. The zero value means defaults.
type Options struct {
	// ChunkSize is the size of a single read, it is also the
	// granularity of progress updates.
	ChunkSize int
	// Bar options are applied after the operation's defaults
	// (description, unit, unit scale), so they take precedence.
	Bar []iterbar.BarOption
}

func (o Options) chunkSize(def int) int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return def
}

func (o Options) barOptions(defaults ...iterbar.BarOption) []iterbar.BarOption {
	return append(defaults, o.Bar...)
}

func byteBar(total int64, desc string, opts Options) *iterbar.Bar {
	return iterbar.New(total, opts.barOptions(
		iterbar.WithDescription(desc),
		iterbar.WithUnit("B"),
		iterbar.WithUnitScale(1024),
	)...)
}

// finish closes bar on success and aborts it on failure, passing err
// through.
func finish(bar *iterbar.Bar, err error) error {
	if err != nil {
		bar.Abort()
	} else {
		bar.Close()
	}
	return err
}

func createFile(fsys afero.Fs, name string, perm os.FileMode) (afero.File, error) {
	return fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}

// copyChunks copies src into dst one chunk at a time.
func copyChunks(dst io.Writer, src io.Reader, size int) (written int64, err error) {
	buf := make([]byte, size)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			nw, werr := dst.Write(buf[:n])
			written += int64(nw)
			if werr != nil {
				return written, werr
			}
			if nw != n {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
