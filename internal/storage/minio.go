package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/greenpark/cms/internal/config"
)

// Client wraps the bucket holding site images. Objects are written with a
// public-read policy so the site can serve them directly.
type Client struct {
	mc        *minio.Client
	bucket    string
	publicURL string
}

// New builds a storage client from config. Returns nil when storage is not
// configured; callers treat a nil client as "uploads unavailable".
func New(cfg config.MinioConfig) (*Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	mc, err := minio.New(cfg.Addr(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object storage: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Addr())
	}

	return &Client{mc: mc, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

// EnsureBucket checks that the bucket exists and, only when absent, creates
// it and attaches the public-read policy. Errors from the storage client
// propagate unmodified; there is no retry.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
		return err
	}
	log.Info().Str("bucket", c.bucket).Msg("bucket created")

	if err := c.mc.SetBucketPolicy(ctx, c.bucket, publicReadPolicy(c.bucket)); err != nil {
		return err
	}
	log.Info().Str("bucket", c.bucket).Msg("bucket policy set to public read")
	return nil
}

// Upload streams an object into the bucket and returns its public URL.
func (c *Client) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return c.ObjectURL(key), nil
}

// ObjectURL returns the public URL for an object key.
func (c *Client) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.publicURL, c.bucket, key)
}

// publicReadPolicy renders the AWS-shaped policy document granting anonymous
// GetObject on everything in the bucket.
func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`, bucket)
}
