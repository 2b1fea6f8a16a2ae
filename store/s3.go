/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Backend stores state blobs as objects in an Amazon S3 bucket, gzipped
// on the wire. Object keys are namespaced under a fixed prefix so the
// bucket can be shared with other state (e.g. the web cache).
type S3Backend struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the backend uses. By default this is
	// initialized in Init() with the default Config, but callers can
	// optionally override it with their own s3 client if desired.
	Client *s3.Client

	bucketName string
}

// NewS3Backend returns an S3Backend over the named bucket. Callers should
// invoke Init() on the returned backend before use.
func NewS3Backend(bucketNameIn string) *S3Backend {
	return &S3Backend{
		bucketName: bucketNameIn,
	}
}

// Init loads the default AWS configuration (environment variables, shared
// config and credentials files) and verifies the bucket is accessible.
func (b *S3Backend) Init(ctx context.Context) error {
	var err error
	b.Config, err = config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("store.s3init: failed to load AWS config: %w", err)
	}
	b.Client = s3.NewFromConfig(b.Config)

	// Permission check: verify bucket exists and is accessible
	if _, err = b.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(b.bucketName),
	}); err != nil {
		return fmt.Errorf("store.s3init: head bucket failed for %s: %w",
			b.bucketName, err)
	}

	return nil
}

func (b *S3Backend) objectKey(key string) string {
	const PathPrefix = "scorebot"

	return fmt.Sprintf("/%v/%v.json.gz", PathPrefix, key)
}

// Get retrieves and gunzips the blob stored under key. A missing object is
// reported as absent, not as an error.
func (b *S3Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(b.bucketName),
		Key:    aws.String(b.objectKey(key)),
	}

	resp, err := b.Client.GetObject(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		// no such key just indicates the blob hasn't been created yet
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store.s3get: failed to get object %v%v: %w",
			*input.Bucket, *input.Key, err)
	}
	defer resp.Body.Close()

	rdr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("store.s3get: failed to open compressed object %v%v: %w",
			*input.Bucket, *input.Key, err)
	}
	defer rdr.Close()

	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, false, fmt.Errorf("store.s3get: failed to read object %v%v: %w",
			*input.Bucket, *input.Key, err)
	}

	return data, true, nil
}

// Put gzips and stores data under key.
func (b *S3Backend) Put(ctx context.Context, key string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket:          aws.String(b.bucketName),
		Key:             aws.String(b.objectKey(key)),
		ContentEncoding: aws.String("gzip"),
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return fmt.Errorf("store.s3put: failed to gzip data for %v%v: %w",
			*input.Bucket, *input.Key, err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("store.s3put: failed to close gzip writer for %v%v: %w",
			*input.Bucket, *input.Key, err)
	}
	input.Body = &buf

	if _, err := b.Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("store.s3put: put failed for %v%v: %w",
			*input.Bucket, *input.Key, err)
	}

	return nil
}

// Delete removes the blob stored under key, if any.
func (b *S3Backend) Delete(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucketName),
		Key:    aws.String(b.objectKey(key)),
	}

	if _, err := b.Client.DeleteObject(ctx, input); err != nil {
		return fmt.Errorf("store.s3delete: delete failed for %v%v: %w",
			*input.Bucket, *input.Key, err)
	}

	return nil
}
