package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/recarchiver/internal/config"
	"github.com/dmitrijs2005/recarchiver/internal/logging"
	"github.com/dmitrijs2005/recarchiver/internal/progress"
)

// openFile is a test seam for os.Open.
var openFile = func(name string) (io.ReadSeekCloser, int64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, fi.Size(), nil
}

// Uploader sends local files to one bucket with a fixed storage class.
type Uploader struct {
	bucket       string
	storageClass types.StorageClass
	transfer     transferAPI
	out          io.Writer
	logger       logging.Logger
}

// New builds an Uploader from c. Progress bars are drawn on out.
func New(ctx context.Context, c *config.Config, out io.Writer, logger logging.Logger) (*Uploader, error) {
	if c.S3Bucket == "" {
		return nil, ErrMissingBucket
	}

	client, err := newS3Client(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	transfer := newTransferManager(client, func(u *manager.Uploader) {
		u.Concurrency = c.Concurrency
		u.PartSize = c.PartSize()
	})

	logger.Debug(ctx, "uploader ready",
		"bucket", c.S3Bucket,
		"region", c.S3Region,
		"storage_class", c.StorageClass,
		"concurrency", c.Concurrency,
		"part_size", c.PartSize(),
	)

	return &Uploader{
		bucket:       c.S3Bucket,
		storageClass: types.StorageClass(c.StorageClass),
		transfer:     transfer,
		out:          out,
		logger:       logger,
	}, nil
}

// Upload stores localPath under ObjectKey(localPath, prefix) and returns
// the key. Any failure is wrapped with the key.
func (u *Uploader) Upload(ctx context.Context, localPath, prefix string) (string, error) {
	key := ObjectKey(localPath, prefix)

	f, size, err := openFile(localPath)
	if err != nil {
		return key, fmt.Errorf("upload %s: %w", key, err)
	}
	defer f.Close()

	s := newSession(localPath, key, size)
	logger := u.logger.With("session", s.ID, "key", key)
	logger.Info(ctx, "upload started", "path", localPath, "bytes", size)

	bar := progress.New(u.out, path.Base(key), size)
	_, err = u.transfer.Upload(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         f,
		StorageClass: u.storageClass,
	}, func(m *manager.Uploader) {
		m.ClientOptions = append(slices.Clip(m.ClientOptions), withProgress(bar.Add))
	})
	bar.Done()

	if err != nil {
		logger.Error(ctx, "upload failed", "error", err)
		return key, fmt.Errorf("upload %s: %w", key, err)
	}

	logger.Info(ctx, "upload finished", "bytes", bar.Current(), "elapsed", time.Since(s.Started).Round(time.Millisecond))
	return key, nil
}
