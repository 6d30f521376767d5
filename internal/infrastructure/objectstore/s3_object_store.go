package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"invoice_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingBucket = errors.New("missing PICTURE_BUCKET")

// S3ObjectStore holds uploaded picture bytes in a single bucket.
//
// Public URLs follow the virtual-hosted S3 form unless
// S3_PUBLIC_BASE_URL overrides the base (local stacks, CDNs).
type S3ObjectStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

var _ interfaces.IObjectStore = (*S3ObjectStore)(nil)

func NewS3ObjectStore(cfg aws.Config) (*S3ObjectStore, error) {
	bucket := os.Getenv("PICTURE_BUCKET")
	if bucket == "" {
		log.Printf("[objectstore] missing PICTURE_BUCKET")
		return nil, ErrMissingBucket
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Local S3 stacks (minio, localstack) need path-style addressing.
		if os.Getenv("S3_ENDPOINT") != "" {
			o.UsePathStyle = true
		}
	})

	return &S3ObjectStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
	}, nil
}

func (s *S3ObjectStore) Put(ctx context.Context, key string, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}

// ResolveURL confirms the object exists and returns its public URL.
// Resolution failing after a successful Put fails the whole upload.
func (s *S3ObjectStore) ResolveURL(ctx context.Context, key string) (string, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", err
	}
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

func (s *S3ObjectStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
