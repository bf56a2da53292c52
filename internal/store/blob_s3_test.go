package store

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/models"
)

type fakeObject struct {
	body     []byte
	etag     string
	modified time.Time
}

// fakeS3 is an in-memory bucket honouring If-None-Match on PutObject and
// If-Match on DeleteObject.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]fakeObject
	now     time.Time
	putErr  error
	copyErr error
	copies  int

	// afterHead runs once HeadObject has answered, outside the lock.
	afterHead func()
}

func etagOf(body []byte) string {
	sum := md5.Sum(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]fakeObject{}, now: fixedNow}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	obj, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("no such key")}
	}
	return &s3.GetObjectOutput{
		Body:         io.NopCloser(bytes.NewReader(obj.body)),
		LastModified: aws.Time(obj.modified),
	}, nil
}

func (f *fakeS3) CopyObject(_ context.Context, in *s3.CopyObjectInput, _ ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.copies++
	if f.copyErr != nil {
		return nil, f.copyErr
	}
	bucket, src, _ := strings.Cut(aws.ToString(in.CopySource), "/")
	if bucket == "" {
		return nil, errors.New("copy source without bucket")
	}
	obj, ok := f.objects[src]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("no such key")}
	}
	obj.modified = f.now
	f.objects[aws.ToString(in.Key)] = obj
	return &s3.CopyObjectOutput{}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.putErr != nil {
		return nil, f.putErr
	}

	key := aws.ToString(in.Key)
	if aws.ToString(in.IfNoneMatch) == "*" {
		if _, exists := f.objects[key]; exists {
			return nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}
		}
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = fakeObject{body: body, etag: etagOf(body), modified: f.now}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	obj, ok := f.objects[aws.ToString(in.Key)]
	f.mu.Unlock()

	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
	}
	if f.afterHead != nil {
		f.afterHead()
	}
	return &s3.HeadObjectOutput{ETag: aws.String(obj.etag), LastModified: aws.Time(obj.modified)}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := aws.ToString(in.Key)
	if in.IfMatch != nil {
		if obj, ok := f.objects[key]; ok && obj.etag != aws.ToString(in.IfMatch) {
			return nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}
		}
	}
	delete(f.objects, key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := &s3.ListObjectsV2Output{}
	for _, k := range keys {
		out.Contents = append(out.Contents, types.Object{
			Key:          aws.String(k),
			LastModified: aws.Time(f.objects[k].modified),
		})
	}
	return out, nil
}

func TestS3BlobStorage_ReadWrite(t *testing.T) {
	fake := newFakeS3()
	s := newS3BlobStorage(fake, "bucket", "prod/")
	ctx := context.Background()

	_, err := s.Read(ctx, models.NamespaceNotes, "abcdefgh")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, s.Write(ctx, models.NamespaceNotes, "abcdefgh", []byte("v1")))
	require.NoError(t, s.Write(ctx, models.NamespaceNotes, "abcdefgh", []byte("v2")))

	got, err := s.Read(ctx, models.NamespaceNotes, "abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	_, ok := fake.objects["prod/notes/abcdefgh"]
	assert.True(t, ok, "objects are keyed by prefix, namespace and id")
}

func TestS3BlobStorage_ReadRefreshesStaleObjects(t *testing.T) {
	fake := newFakeS3()
	s := newS3BlobStorage(fake, "bucket", "")
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, models.NamespaceShared, "abcdefgh", []byte("shared")))

	// свежий объект не копируется
	s.now = func() time.Time { return fixedNow.Add(time.Hour) }
	_, err := s.Read(ctx, models.NamespaceShared, "abcdefgh")
	require.NoError(t, err)
	assert.Zero(t, fake.copies)

	later := fixedNow.Add(48 * time.Hour)
	s.now = func() time.Time { return later }
	fake.now = later
	got, err := s.Read(ctx, models.NamespaceShared, "abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, []byte("shared"), got)
	assert.Equal(t, 1, fake.copies)

	infos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, later, infos[0].AccessedAt)
}

func TestS3BlobStorage_ReadSurvivesTouchFailure(t *testing.T) {
	fake := newFakeS3()
	s := newS3BlobStorage(fake, "bucket", "")
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, models.NamespaceNotes, "abcdefgh", []byte("tree")))
	fake.copyErr = errors.New("access denied")
	s.now = func() time.Time { return fixedNow.Add(30 * 24 * time.Hour) }

	got, err := s.Read(ctx, models.NamespaceNotes, "abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, []byte("tree"), got)
	assert.Equal(t, 1, fake.copies)
}

func TestS3BlobStorage_CreateIsConditional(t *testing.T) {
	s := newS3BlobStorage(newFakeS3(), "bucket", "")
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, models.NamespaceShared, "abcdefgh", []byte("one")))
	assert.ErrorIs(t, s.Create(ctx, models.NamespaceShared, "abcdefgh", []byte("two")), ErrBlobExists)

	got, err := s.Read(ctx, models.NamespaceShared, "abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)
}

func TestS3BlobStorage_PutFailure(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("connection reset")
	s := newS3BlobStorage(fake, "bucket", "")

	err := s.Write(context.Background(), models.NamespaceNotes, "abcdefgh", []byte("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBlobExists)
}

func TestS3BlobStorage_DeleteAndList(t *testing.T) {
	fake := newFakeS3()
	s := newS3BlobStorage(fake, "bucket", "p/")
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, models.NamespaceNotes, "note1234", []byte("a")))
	require.NoError(t, s.Create(ctx, models.NamespaceShared, "shared12", []byte("b")))
	require.NoError(t, s.Write(ctx, models.NamespaceNotes, "gone1234", []byte("c")))
	removed, err := s.DeleteIfIdle(ctx, models.NamespaceNotes, "gone1234", fixedNow.Add(time.Hour))
	require.NoError(t, err)
	require.True(t, removed)

	// foreign objects in the bucket are ignored
	fake.objects["elsewhere/notes/x"] = fakeObject{body: []byte("?")}
	fake.objects["p/notes/nested/x"] = fakeObject{body: []byte("?")}

	infos, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.BlobInfo{
		{Namespace: models.NamespaceNotes, ID: "note1234", AccessedAt: fixedNow},
		{Namespace: models.NamespaceShared, ID: "shared12", AccessedAt: fixedNow},
	}, infos)
}

func TestS3BlobStorage_DeleteIfIdle(t *testing.T) {
	ctx := context.Background()
	cutoff := fixedNow.Add(time.Hour)

	t.Run("idle object is deleted", func(t *testing.T) {
		fake := newFakeS3()
		s := newS3BlobStorage(fake, "bucket", "")
		require.NoError(t, s.Write(ctx, models.NamespaceNotes, "abcdefgh", []byte("tree")))

		removed, err := s.DeleteIfIdle(ctx, models.NamespaceNotes, "abcdefgh", cutoff)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, fake.objects)
	})

	t.Run("recent object is kept", func(t *testing.T) {
		fake := newFakeS3()
		s := newS3BlobStorage(fake, "bucket", "")
		require.NoError(t, s.Write(ctx, models.NamespaceNotes, "abcdefgh", []byte("tree")))

		removed, err := s.DeleteIfIdle(ctx, models.NamespaceNotes, "abcdefgh", fixedNow.Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Len(t, fake.objects, 1)
	})

	t.Run("write after head survives", func(t *testing.T) {
		fake := newFakeS3()
		s := newS3BlobStorage(fake, "bucket", "")
		require.NoError(t, s.Write(ctx, models.NamespaceNotes, "abcdefgh", []byte("old")))
		fake.afterHead = func() {
			require.NoError(t, s.Write(ctx, models.NamespaceNotes, "abcdefgh", []byte("new")))
		}

		removed, err := s.DeleteIfIdle(ctx, models.NamespaceNotes, "abcdefgh", cutoff)
		require.NoError(t, err)
		assert.False(t, removed)

		fake.afterHead = nil
		got, err := s.Read(ctx, models.NamespaceNotes, "abcdefgh")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), got)
	})

	t.Run("missing object", func(t *testing.T) {
		s := newS3BlobStorage(newFakeS3(), "bucket", "")

		removed, err := s.DeleteIfIdle(ctx, models.NamespaceNotes, "abcdefgh", cutoff)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestNewS3BlobStorage_ConfiguresClient(t *testing.T) {
	oldLoad, oldNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = oldLoad, oldNew })

	var opts s3.Options
	fake := newFakeS3()
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		for _, fn := range optFns {
			fn(&opts)
		}
		return fake
	}

	s, err := NewS3BlobStorage(context.Background(), config.S3{
		Bucket:       "notes",
		Region:       "us-east-1",
		Endpoint:     "http://minio:9000",
		AccessKey:    "minio",
		SecretKey:    "minio123",
		UsePathStyle: true,
	})
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "http://minio:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestIsS3NotFound(t *testing.T) {
	assert.False(t, isS3NotFound(nil))
	assert.True(t, isS3NotFound(&types.NoSuchKey{}))
	assert.True(t, isS3NotFound(&smithy.GenericAPIError{Code: "NotFound"}))
	assert.False(t, isS3NotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, isS3NotFound(errors.New("boom")))
}
