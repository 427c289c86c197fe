package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectExists is returned by Upload when overwrite is disabled and
// an object already lives at the key.
var ErrObjectExists = errors.New("object already exists")

// ObjectStorage is the blob store holding application photos. Backends:
// local filesystem for dev/tests, a Firebase-managed GCS bucket in
// production.
type ObjectStorage interface {
	// Upload stores the blob at key and returns its publicly resolvable
	// URL. With overwrite set, an existing object at the key is replaced.
	Upload(ctx context.Context, key string, r io.Reader, contentType string, overwrite bool) (string, error)

	// Delete removes the object at key. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, key string) error
}
