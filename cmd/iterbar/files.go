package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"github.com/vbauerster/iterbar/fileop"
)

func chunkFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "chunk-size",
		Usage: "Bytes per read, 0 means default",
	}
}

func (a *app) fileOptions(cmd *cli.Command) fileop.Options {
	return fileop.Options{
		ChunkSize: int(cmd.Int("chunk-size")),
		Bar:       a.cfg.Options(),
	}
}

func (a *app) copyCmd() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Copy a file",
		ArgsUsage: "SRC DST",
		Flags:     []cli.Flag{chunkFlag()},
		Action:    a.copy,
	}
}

func (a *app) copy(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return usage(cmd)
	}
	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if err := fileop.CopyFile(a.fs, src, dst, a.fileOptions(cmd)); err != nil {
		return err
	}
	a.log.WithField("src", src).WithField("dst", dst).Info("file copied")
	return nil
}

func (a *app) copyTreeCmd() *cli.Command {
	return &cli.Command{
		Name:      "copytree",
		Usage:     "Copy a directory tree",
		ArgsUsage: "SRC DST",
		Flags:     []cli.Flag{chunkFlag()},
		Action:    a.copyTree,
	}
}

func (a *app) copyTree(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return usage(cmd)
	}
	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if err := fileop.CopyTree(a.fs, src, dst, a.fileOptions(cmd)); err != nil {
		return err
	}
	a.log.WithField("src", src).WithField("dst", dst).Info("tree copied")
	return nil
}

func (a *app) downloadCmd() *cli.Command {
	return &cli.Command{
		Name:      "download",
		Usage:     "Download a URL, into DST or the URL's base name",
		ArgsUsage: "URL [DST]",
		Flags: []cli.Flag{
			chunkFlag(),
			&cli.DurationFlag{Name: "timeout", Usage: "Whole request timeout", Value: 5 * time.Minute},
		},
		Action: a.download,
	}
}

func (a *app) download(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 || cmd.NArg() > 2 {
		return usage(cmd)
	}
	client := &http.Client{Timeout: cmd.Duration("timeout")}
	url := cmd.Args().Get(0)
	dst, err := fileop.Download(ctx, client, url, a.fs, cmd.Args().Get(1), a.fileOptions(cmd))
	if err != nil {
		return err
	}
	a.log.WithField("url", url).WithField("dst", dst).Info("downloaded")
	return nil
}

func (a *app) blobCmd() *cli.Command {
	return &cli.Command{
		Name:  "blob",
		Usage: "Transfer blobs, BUCKET is a gocloud URL such as file:///tmp/bucket",
		Commands: []*cli.Command{
			{
				Name:      "fetch",
				Usage:     "Download a blob into a file",
				ArgsUsage: "BUCKET KEY DST",
				Flags:     []cli.Flag{chunkFlag()},
				Action:    a.blobFetch,
			},
			{
				Name:      "put",
				Usage:     "Upload a file as a blob",
				ArgsUsage: "SRC BUCKET KEY",
				Flags:     []cli.Flag{chunkFlag()},
				Action:    a.blobPut,
			},
		},
	}
}

func (a *app) blobFetch(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 3 {
		return usage(cmd)
	}
	args := cmd.Args()
	return a.withBucket(ctx, args.Get(0), func(bucket *blob.Bucket) error {
		return fileop.FetchBlob(ctx, bucket, args.Get(1), a.fs, args.Get(2), a.fileOptions(cmd))
	})
}

func (a *app) blobPut(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 3 {
		return usage(cmd)
	}
	args := cmd.Args()
	return a.withBucket(ctx, args.Get(1), func(bucket *blob.Bucket) error {
		return fileop.PutBlob(ctx, a.fs, args.Get(0), bucket, args.Get(2), a.fileOptions(cmd))
	})
}

func (a *app) withBucket(ctx context.Context, url string, fn func(*blob.Bucket) error) (err error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return fmt.Errorf("open bucket %s: %w", url, err)
	}
	defer func() {
		if cerr := bucket.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(bucket)
}
