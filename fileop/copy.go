package fileop

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/vbauerster/iterbar"
)

// CopyFile copies src to dst on fsys with a byte bar described
// "Copying <base name>". A missing src yields an error matching
// fs.ErrNotExist.
func CopyFile(fsys afero.Fs, src, dst string, opts Options) error {
	info, err := statRegular(fsys, src)
	if err != nil {
		return err
	}
	bar := byteBar(info.Size(), "Copying "+filepath.Base(src), opts)
	return finish(bar, copyFile(fsys, src, dst, info.Mode().Perm(), bar, opts.chunkSize(defaultChunkSize)))
}

// CopyTree copies every regular file under src to the same relative
// path under dst, creating directories as needed. Progress is counted
// in files. A failed file doesn't stop the others, all failures are
// returned together as a *multierror.Error.
func CopyTree(fsys afero.Fs, src, dst string, opts Options) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDir, src)
	}

	var files []string
	err = afero.Walk(fsys, src, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", src, err)
	}

	if err := fsys.MkdirAll(dst, dirMode); err != nil {
		return err
	}

	chunk := opts.chunkSize(defaultChunkSize)
	var result *multierror.Error
	seq := iterbar.Items(files, opts.barOptions(
		iterbar.WithDescription("Copying files"),
		iterbar.WithUnit("file"),
	)...)
	for path := range seq {
		if err := copyTreeFile(fsys, src, dst, path, chunk); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func copyTreeFile(fsys afero.Fs, src, dst, path string, chunk int) error {
	rel, err := filepath.Rel(src, path)
	if err != nil {
		return err
	}
	target := filepath.Join(dst, rel)
	if err := fsys.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return err
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	return copyFile(fsys, path, target, info.Mode().Perm(), nil, chunk)
}

func statRegular(fsys afero.Fs, name string) (fs.FileInfo, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("source file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	return info, nil
}

// copyFile copies src to dst, counting bytes on bar if it's not nil.
func copyFile(fsys afero.Fs, src, dst string, perm fs.FileMode, bar *iterbar.Bar, chunk int) (err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createFile(fsys, dst, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if bar != nil {
		_, err = copyChunks(bar.ProxyWriter(out), in, chunk)
	} else {
		_, err = copyChunks(out, in, chunk)
	}
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}
