// Package slot persists opaque values under string keys. It is the stand-in for
// browser local storage: each key holds one whole serialized collection.
package slot

import (
	"context"
	"errors"
	"regexp"
)

var ErrInvalidKey = errors.New("slot key must match [A-Za-z0-9_-]+")

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// Store reads and overwrites slots. Get returns (nil, nil) for a key that was never set.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

func ValidateKey(key string) error {
	if !keyRegex.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}
