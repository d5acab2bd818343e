package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtpl/pkg/storage"
)

func TestNewMirror(t *testing.T) {
	t.Parallel()
	m, err := storage.NewMirror()
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)
	assert.Nil(t, m)
}

func TestMirror_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes to every store", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		local, err := storage.NewLocalStorage(dir)
		require.NoError(t, err)

		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()
		bucket := newTestS3Storage(t, client, "")

		m, err := storage.NewMirror(local, bucket)
		require.NoError(t, err)

		require.NoError(t, m.Write(context.Background(), "a.html", []byte("A")))
		got, err := os.ReadFile(filepath.Join(dir, "a.html"))
		require.NoError(t, err)
		assert.Equal(t, "A", string(got))
		assert.True(t, m.Exists(context.Background(), "a.html"))
		client.AssertExpectations(t)
	})

	t.Run("failure in one store still writes the others", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		local, err := storage.NewLocalStorage(dir)
		require.NoError(t, err)

		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, context.DeadlineExceeded)
		bucket := newTestS3Storage(t, client, "")

		m, err := storage.NewMirror(bucket, local)
		require.NoError(t, err)

		err = m.Write(context.Background(), "a.html", []byte("A"))
		assert.ErrorIs(t, err, storage.ErrOperationTimeout)
		assert.FileExists(t, filepath.Join(dir, "a.html"))
	})
}
