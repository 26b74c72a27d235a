package application_test

import (
	"context"
	"image"
	"io"
	"mime/multipart"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityav25/tunestream/internal/modules/filestorage/application"
	"github.com/adityav25/tunestream/internal/modules/filestorage/domain"
)

type mockStorage struct {
	uploadFn  func(context.Context, string, io.Reader, string) (string, error)
	deleteFn  func(context.Context, string) error
	presignFn func(context.Context, string, time.Duration) (string, error)
	getKeyFn  func(string) (string, error)
}

func (m mockStorage) UploadFile(ctx context.Context, key string, file io.Reader, ct string) (string, error) {
	return m.uploadFn(ctx, key, file, ct)
}
func (m mockStorage) DeleteFile(ctx context.Context, key string) error { return m.deleteFn(ctx, key) }
func (m mockStorage) GetPresignedURL(ctx context.Context, key string, d time.Duration) (string, error) {
	return m.presignFn(ctx, key, d)
}
func (m mockStorage) GetKeyFromURL(u string) (string, error) { return m.getKeyFn(u) }

func okStorage() mockStorage {
	return mockStorage{
		uploadFn:  func(_ context.Context, key string, _ io.Reader, _ string) (string, error) { return "https://cdn/" + key, nil },
		deleteFn:  func(context.Context, string) error { return nil },
		presignFn: func(context.Context, string, time.Duration) (string, error) { return "presigned", nil },
		getKeyFn:  func(string) (string, error) { return "resolved-key", nil },
	}
}

func tempAudioFile(t *testing.T) multipart.File {
	t.Helper()
	tf, err := os.CreateTemp(t.TempDir(), "upload-*.mp3")
	require.NoError(t, err)
	_, err = tf.WriteString("not really audio but close enough")
	require.NoError(t, err)
	require.NoError(t, tf.Close())

	f, err := os.Open(tf.Name())
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func tempImageFile(t *testing.T) (multipart.File, int64) {
	t.Helper()
	tf, err := os.CreateTemp(t.TempDir(), "cover-*.png")
	require.NoError(t, err)
	img := imaging.New(800, 600, image.White.C)
	require.NoError(t, imaging.Encode(tf, img, imaging.PNG))
	require.NoError(t, tf.Close())

	f, err := os.Open(tf.Name())
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	info, err := f.Stat()
	require.NoError(t, err)
	return f, info.Size()
}

func TestUploadAudio(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted", func(t *testing.T) {
		svc := application.NewFileService(okStorage())
		f := tempAudioFile(t)
		h := &multipart.FileHeader{Filename: "song.mp3", Size: 1024, Header: map[string][]string{"Content-Type": {"audio/mpeg"}}}

		url, key, err := svc.UploadAudio(ctx, f, h)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "audio/"))
		assert.True(t, strings.HasSuffix(key, ".mp3"))
		assert.Contains(t, url, key)
	})

	t.Run("charset parameter tolerated", func(t *testing.T) {
		svc := application.NewFileService(okStorage())
		f := tempAudioFile(t)
		h := &multipart.FileHeader{Filename: "song.mp3", Size: 1024, Header: map[string][]string{"Content-Type": {"Audio/MPEG; charset=binary"}}}

		_, _, err := svc.UploadAudio(ctx, f, h)
		require.NoError(t, err)
	})

	t.Run("oversized rejected", func(t *testing.T) {
		svc := application.NewFileService(okStorage())
		f := tempAudioFile(t)
		h := &multipart.FileHeader{Filename: "song.mp3", Size: application.MaxAudioSize + 1, Header: map[string][]string{"Content-Type": {"audio/mpeg"}}}

		_, _, err := svc.UploadAudio(ctx, f, h)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})

	t.Run("wrong type rejected", func(t *testing.T) {
		svc := application.NewFileService(okStorage())
		f := tempAudioFile(t)
		h := &multipart.FileHeader{Filename: "song.pdf", Size: 1024, Header: map[string][]string{"Content-Type": {"application/pdf"}}}

		_, _, err := svc.UploadAudio(ctx, f, h)
		assert.ErrorIs(t, err, domain.ErrInvalidContentType)
	})
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("normalised to square jpeg", func(t *testing.T) {
		var uploadedKey, uploadedType string
		storage := okStorage()
		storage.uploadFn = func(_ context.Context, key string, file io.Reader, ct string) (string, error) {
			uploadedKey, uploadedType = key, ct
			img, err := imaging.Decode(file)
			require.NoError(t, err)
			bounds := img.Bounds()
			assert.Equal(t, 640, bounds.Dx())
			assert.Equal(t, 640, bounds.Dy())
			return "https://cdn/" + key, nil
		}
		svc := application.NewFileService(storage)

		f, size := tempImageFile(t)
		h := &multipart.FileHeader{Filename: "cover.png", Size: size, Header: map[string][]string{"Content-Type": {"image/png"}}}

		_, key, err := svc.UploadImage(ctx, f, h)
		require.NoError(t, err)
		assert.Equal(t, key, uploadedKey)
		assert.Equal(t, "image/jpeg", uploadedType)
		assert.True(t, strings.HasSuffix(key, ".jpg"))
	})

	t.Run("garbage payload rejected", func(t *testing.T) {
		svc := application.NewFileService(okStorage())
		f := tempAudioFile(t) // text bytes, not an image
		h := &multipart.FileHeader{Filename: "cover.png", Size: 100, Header: map[string][]string{"Content-Type": {"image/png"}}}

		_, _, err := svc.UploadImage(ctx, f, h)
		assert.ErrorIs(t, err, domain.ErrInvalidContentType)
	})

	t.Run("oversized rejected", func(t *testing.T) {
		svc := application.NewFileService(okStorage())
		f, _ := tempImageFile(t)
		h := &multipart.FileHeader{Filename: "cover.png", Size: application.MaxImageSize + 1, Header: map[string][]string{"Content-Type": {"image/png"}}}

		_, _, err := svc.UploadImage(ctx, f, h)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})
}

func TestDeleteByURL(t *testing.T) {
	ctx := context.Background()

	var deletedKey string
	storage := okStorage()
	storage.deleteFn = func(_ context.Context, key string) error {
		deletedKey = key
		return nil
	}
	svc := application.NewFileService(storage)

	require.NoError(t, svc.DeleteByURL(ctx, "https://cdn/audio/abc.mp3"))
	assert.Equal(t, "resolved-key", deletedKey)
}

func TestPresign(t *testing.T) {
	svc := application.NewFileService(okStorage())
	url, err := svc.GetPresignedURL(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "presigned", url)
}
