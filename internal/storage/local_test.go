package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"encore-backend/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestLocalStorage_UploadAndOpen(t *testing.T) {
	s, err := storage.NewLocalStorage("http://localhost:8080/", t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	url, err := s.Upload(ctx, "applications/user-1/app-1.jpg", strings.NewReader("jpeg bytes"), "image/jpeg", true)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/applications/user-1/app-1.jpg", url)

	f, err := s.Open("applications/user-1/app-1.jpg")
	assert.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	assert.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestLocalStorage_Overwrite(t *testing.T) {
	s, err := storage.NewLocalStorage("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	_, err = s.Upload(ctx, "k.jpg", strings.NewReader("one"), "image/jpeg", false)
	assert.NoError(t, err)

	_, err = s.Upload(ctx, "k.jpg", strings.NewReader("two"), "image/jpeg", false)
	assert.ErrorIs(t, err, storage.ErrObjectExists)

	_, err = s.Upload(ctx, "k.jpg", strings.NewReader("two"), "image/jpeg", true)
	assert.NoError(t, err)

	f, err := s.Open("k.jpg")
	assert.NoError(t, err)
	defer f.Close()
	data, _ := io.ReadAll(f)
	assert.Equal(t, "two", string(data))
}

func TestLocalStorage_Delete(t *testing.T) {
	s, err := storage.NewLocalStorage("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	_, err = s.Upload(ctx, "gone.jpg", strings.NewReader("x"), "image/jpeg", true)
	assert.NoError(t, err)
	assert.NoError(t, s.Delete(ctx, "gone.jpg"))

	_, err = s.Open("gone.jpg")
	assert.Error(t, err)

	// Deleting an absent object is not an error.
	assert.NoError(t, s.Delete(ctx, "never-existed.jpg"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := storage.NewLocalStorage("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)

	_, err = s.Upload(context.Background(), "../outside.jpg", strings.NewReader("x"), "image/jpeg", true)
	assert.Error(t, err)
}
