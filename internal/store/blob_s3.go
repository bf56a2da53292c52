package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// s3API is the subset of *s3.Client used by [s3BlobStorage].
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3TouchAfter is how stale LastModified may get before a read copies the
// object onto itself to move it forward.
const s3TouchAfter = 24 * time.Hour

// s3BlobStorage keeps blobs as objects named <prefix><namespace>/<id>.
// Object stores do not track reads, so LastModified stands in for the access
// time and reads refresh it at most once per s3TouchAfter.
type s3BlobStorage struct {
	client s3API
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3BlobStorage builds an S3 client from cfg. Static credentials are used
// when an access key is configured, the default AWS chain otherwise.
func NewS3BlobStorage(ctx context.Context, cfg config.S3) (BlobStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3BlobStorage(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3BlobStorage(client s3API, bucket, prefix string) *s3BlobStorage {
	return &s3BlobStorage{client: client, bucket: bucket, prefix: prefix, now: time.Now}
}

func (s *s3BlobStorage) key(ns models.Namespace, id string) (string, error) {
	if err := checkKey(ns, id); err != nil {
		return "", err
	}
	return s.prefix + string(ns) + "/" + id, nil
}

func (s *s3BlobStorage) Read(ctx context.Context, ns models.Namespace, id string) ([]byte, error) {
	key, err := s.key(ns, id)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isS3NotFound(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting object: %w", err)
	}
	defer out.Body.Close()

	blob, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading object body: %w", err)
	}

	if now := s.now(); now.Sub(aws.ToTime(out.LastModified)) > s3TouchAfter {
		s.touch(ctx, ns, id, key, now)
	}

	return blob, nil
}

// touch rewrites the object in place. A failure only delays garbage
// collection, so it is logged and the read still succeeds.
func (s *s3BlobStorage) touch(ctx context.Context, ns models.Namespace, id, key string, now time.Time) {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:            aws.String(s.bucket),
		Key:               aws.String(key),
		CopySource:        aws.String(s.bucket + "/" + key),
		MetadataDirective: types.MetadataDirectiveReplace,
		Metadata:          map[string]string{"accessed-at": now.UTC().Format(time.RFC3339)},
	})
	if err != nil {
		logger.FromContext(ctx).WithBlob(string(ns), id).Warn().Err(err).
			Str("func", "s3BlobStorage.touch").
			Msg("failed to refresh access time")
	}
}

func (s *s3BlobStorage) Write(ctx context.Context, ns models.Namespace, id string, blob []byte) error {
	key, err := s.key(ns, id)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(blob),
	})
	if err != nil {
		return fmt.Errorf("error putting object: %w", err)
	}

	return nil
}

func (s *s3BlobStorage) Create(ctx context.Context, ns models.Namespace, id string, blob []byte) error {
	key, err := s.key(ns, id)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob),
		IfNoneMatch: aws.String("*"),
	})
	if isS3PreconditionFailed(err) {
		return ErrBlobExists
	}
	if err != nil {
		return fmt.Errorf("error putting object: %w", err)
	}

	return nil
}

// DeleteIfIdle checks LastModified and deletes the object only if its ETag
// is still the one it checked, so a Write since then fails the precondition.
func (s *s3BlobStorage) DeleteIfIdle(ctx context.Context, ns models.Namespace, id string, cutoff time.Time) (bool, error) {
	key, err := s.key(ns, id)
	if err != nil {
		return false, err
	}

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isS3NotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error heading object: %w", err)
	}
	if !aws.ToTime(head.LastModified).Before(cutoff) {
		return false, nil
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket:  aws.String(s.bucket),
		Key:     aws.String(key),
		IfMatch: head.ETag,
	})
	if isS3PreconditionFailed(err) || isS3NotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error deleting object: %w", err)
	}

	return true, nil
}

func (s *s3BlobStorage) List(ctx context.Context) ([]models.BlobInfo, error) {
	var infos []models.BlobInfo

	for _, ns := range models.Namespaces {
		nsPrefix := s.prefix + string(ns) + "/"
		paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
			Bucket: aws.String(s.bucket),
			Prefix: aws.String(nsPrefix),
		})

		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("error listing objects: %w", err)
			}

			for _, obj := range page.Contents {
				id := strings.TrimPrefix(aws.ToString(obj.Key), nsPrefix)
				if id == "" || strings.Contains(id, "/") {
					continue
				}
				infos = append(infos, models.BlobInfo{
					Namespace:  ns,
					ID:         id,
					AccessedAt: aws.ToTime(obj.LastModified),
				})
			}
		}
	}

	return infos, nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	return false
}

func isS3PreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return true
		}
	}

	return false
}
