package fileop

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// Download fetches url with client into dst on fsys, with a byte bar
// sized by Content-Length (unknown if the server doesn't send one). If
// dst is empty, the last element of the URL path is used. A nil client
// means http.DefaultClient. Returns the destination path.
func Download(ctx context.Context, client *http.Client, url string, fsys afero.Fs, dst string, opts Options) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: GET %s: %s", ErrHTTPStatus, url, resp.Status)
	}

	if dst == "" {
		dst = path.Base(req.URL.Path)
		if dst == "/" || dst == "." {
			dst = "index.html"
		}
	}

	out, err := createFile(fsys, dst, fileMode)
	if err != nil {
		return "", err
	}

	bar := byteBar(resp.ContentLength, "Downloading "+filepath.Base(dst), opts)
	_, err = copyChunks(bar.ProxyWriter(out), resp.Body, opts.chunkSize(defaultDownloadChunkSize))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = fmt.Errorf("download %s: %w", url, err)
	}
	return dst, finish(bar, err)
}
