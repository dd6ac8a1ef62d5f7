package records

import "context"

// UpdateFunc receives the current value (nil if absent) and returns the value
// to store. Returning a nil value deletes the key; returning an error aborts
// the update without writing.
type UpdateFunc func(current []byte) ([]byte, error)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
