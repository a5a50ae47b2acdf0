// Package storage persists the calculator's raw form inputs between sessions.
//
// Values are stored as JSON documents keyed by name; DefaultKey holds the
// single "last used" input set. Backends live in the memory, sqlite and redis
// subpackages and all satisfy InputStore.
package storage

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// DefaultKey is the key under which the most recent inputs are saved.
const DefaultKey = "coastFireCalculatorData"

// ErrNotFound is returned by Load when no inputs are stored under a key.
var ErrNotFound = errors.New("inputs not found")

// InputStore saves and restores raw calculator inputs. Implementations are
// safe for concurrent use. Delete of a missing key is not an error.
type InputStore interface {
	Save(ctx context.Context, key string, inputs domain.RawInputs) error
	Load(ctx context.Context, key string) (domain.RawInputs, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Encode serializes inputs into the stored JSON document.
func Encode(inputs domain.RawInputs) ([]byte, error) {
	data, err := json.Marshal(inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inputs: %w", err)
	}
	return data, nil
}

// Decode parses a stored JSON document.
func Decode(data []byte) (domain.RawInputs, error) {
	var inputs domain.RawInputs
	if err := json.Unmarshal(data, &inputs); err != nil {
		return domain.RawInputs{}, fmt.Errorf("failed to decode inputs: %w", err)
	}
	return inputs, nil
}

// ValidateKey rejects empty keys.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	return nil
}
