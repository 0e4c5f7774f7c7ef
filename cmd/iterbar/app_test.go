package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbauerster/iterbar"
)

// unsetEnv removes variables which would change flag values, such as
// CI set by most build systems.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

// run executes the CLI on fsys and returns the app and whatever was
// written to stderr.
func run(t *testing.T, fsys afero.Fs, args ...string) (*app, string, error) {
	t.Helper()
	unsetEnv(t, "CI", "ITERBAR_DISABLE", "ITERBAR_CONFIG")
	stubs := gostub.Stub(&fsFactory, func() afero.Fs { return fsys })
	defer stubs.Reset()

	var stderr bytes.Buffer
	a := &app{log: logrus.New()}
	cmd := a.command()
	cmd.Writer = io.Discard
	cmd.ErrWriter = &stderr
	err := cmd.Run(context.Background(), append([]string{"iterbar"}, args...))
	return a, stderr.String(), err
}

func TestResolvePrecedence(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte(`
unit: files
min_interval: 250ms
width: 60
style: minimal
`), 0o644))

	a, _, err := run(t, fsys, "--config", "/cfg.yaml", "--unit", "items", "loop", "--count", "0")
	require.NoError(t, err)
	assert.Equal(t, "items", a.cfg.Unit, "flag must win over file")
	assert.Equal(t, 250*time.Millisecond, a.cfg.MinInterval)
	assert.Equal(t, 60, a.cfg.Width)
	assert.Equal(t, iterbar.StyleMinimal, a.cfg.Style)
	assert.False(t, a.cfg.Disabled)
}

func TestDisableFromEnv(t *testing.T) {
	fsys := afero.NewMemMapFs()
	unsetEnv(t, "CI", "ITERBAR_CONFIG")
	t.Setenv("ITERBAR_DISABLE", "true")

	stubs := gostub.Stub(&fsFactory, func() afero.Fs { return fsys })
	defer stubs.Reset()

	var stderr bytes.Buffer
	a := &app{log: logrus.New()}
	cmd := a.command()
	cmd.ErrWriter = &stderr
	err := cmd.Run(context.Background(), []string{"iterbar", "loop", "--count", "5", "--delay", "0s"})
	require.NoError(t, err)
	assert.True(t, a.cfg.Disabled)
	assert.NotContains(t, stderr.String(), "\r")
}

func TestConfigErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bad.yaml", []byte("min_interval: soon\n"), 0o644))

	_, _, err := run(t, fsys, "--config", "/bad.yaml", "loop", "--count", "0")
	assert.ErrorIs(t, err, ErrConfig)

	_, _, err = run(t, fsys, "--log-level", "chatty", "loop", "--count", "0")
	assert.ErrorIs(t, err, ErrConfig)

	_, _, err = run(t, fsys, "--style", "fancy", "loop", "--count", "0")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestDemoCommands(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "loop",
			args: []string{"loop", "--count", "5", "--delay", "0s"},
			want: []string{"Processing: ", "5/5"},
		},
		{
			name: "manual",
			args: []string{"manual", "--total", "25", "--step", "10", "--delay", "0s"},
			want: []string{"Manual control: ", "25/25"},
		},
		{
			name: "nested",
			args: []string{"nested", "--outer", "2", "--inner", "3", "--delay", "0s"},
			want: []string{"Epochs: ", "2/2", "Epoch 2: "},
		},
		{
			name: "postfix",
			args: []string{"postfix", "--epochs", "3", "--delay", "0s"},
			want: []string{"Training: ", "3/3", "loss=0.2500, acc=0.8750, epoch=3"},
		},
		{
			name: "parallel",
			args: []string{"parallel", "--items", "10", "--workers", "3", "--delay", "0s"},
			want: []string{"Processing items: ", "10/10", "parallel processing finished"},
		},
		{
			name: "unit flag",
			args: []string{"--unit", "rows", "loop", "--count", "2", "--delay", "0s"},
			want: []string{"rows/s"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, out, err := run(t, afero.NewMemMapFs(), tc.args...)
			require.NoError(t, err)
			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestManualRejectsBadStep(t *testing.T) {
	_, _, err := run(t, afero.NewMemMapFs(), "manual", "--step", "0")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestCopyCommands(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/data/a.txt", []byte("alpha"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/data/sub/b.txt", []byte("beta"), 0o644))

	_, out, err := run(t, fsys, "copy", "/data/a.txt", "/a.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Copying a.txt: ")
	assert.Contains(t, out, "file copied")

	_, out, err = run(t, fsys, "copytree", "/data", "/backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Copying files: ")

	for name, want := range map[string]string{"/a.txt": "alpha", "/backup/sub/b.txt": "beta"} {
		got, err := afero.ReadFile(fsys, name)
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}

	_, _, err = run(t, fsys, "copy", "/data/a.txt")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestDownloadCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("z", 2048)))
	}))
	defer server.Close()

	fsys := afero.NewMemMapFs()
	_, out, err := run(t, fsys, "download", server.URL+"/pub/archive.tar")
	require.NoError(t, err)
	assert.Contains(t, out, "Downloading archive.tar: ")

	got, err := afero.ReadFile(fsys, "archive.tar")
	require.NoError(t, err)
	assert.Len(t, got, 2048)
}

func TestBlobCommands(t *testing.T) {
	dir := t.TempDir()
	bucketURL := "file://" + filepath.ToSlash(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), []byte("weights"), 0o644))

	fsys := afero.NewMemMapFs()
	_, out, err := run(t, fsys, "blob", "fetch", bucketURL, "model.bin", "/model.bin")
	require.NoError(t, err)
	assert.Contains(t, out, "Fetching model.bin: ")

	got, err := afero.ReadFile(fsys, "/model.bin")
	require.NoError(t, err)
	assert.Equal(t, "weights", string(got))

	require.NoError(t, afero.WriteFile(fsys, "/notes.txt", []byte("notes"), 0o644))
	_, out, err = run(t, fsys, "blob", "put", "/notes.txt", bucketURL, "notes.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Uploading notes.txt: ")

	uploaded, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "notes", string(uploaded))

	_, _, err = run(t, fsys, "blob", "fetch", bucketURL)
	assert.ErrorIs(t, err, ErrUsage)
}
