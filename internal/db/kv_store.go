package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// kvCollection is the single flat Firestore collection backing the key-value
// namespace. The document ID is the key (including its "review:" / "user_plan:"
// / "donation:" prefix) and the document body is the stored value.
const kvCollection = "kv_store"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("document not found")

// KVStore is a thin typed accessor over the Firestore-backed key-value
// namespace. It carries no business logic: last-write-wins sets, no
// transactions across keys.
type KVStore struct {
	client *firestore.Client
}

// NewKVStore creates a KVStore on top of an initialized Firestore client.
func NewKVStore(client *firestore.Client) *KVStore {
	if client == nil {
		log.Fatal("Firestore client is not initialized for KVStore.")
	}
	return &KVStore{client: client}
}

// Get reads the value stored under key into dest. Returns ErrNotFound when the
// key is absent.
func (s *KVStore) Get(ctx context.Context, key string, dest interface{}) error {
	if key == "" {
		return errors.New("key cannot be empty for Get operation")
	}
	snap, err := s.client.Collection(kvCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return fmt.Errorf("failed to get key %q: %w", key, err)
	}
	if err := snap.DataTo(dest); err != nil {
		return fmt.Errorf("failed to decode value for key %q: %w", key, err)
	}
	return nil
}

// Set stores value under key, overwriting any previous value.
func (s *KVStore) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return errors.New("key cannot be empty for Set operation")
	}
	if _, err := s.client.Collection(kvCollection).Doc(key).Set(ctx, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Deleting an absent key is not an
// error (Firestore deletes are idempotent).
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty for Delete operation")
	}
	if _, err := s.client.Collection(kvCollection).Doc(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// GetByPrefix returns the snapshots of every document whose key starts with
// prefix, using a document-ID range query. "\uf8ff" sorts after any code point
// that can appear in a key, so the half-open range covers exactly the prefix.
func (s *KVStore) GetByPrefix(ctx context.Context, prefix string) ([]*firestore.DocumentSnapshot, error) {
	if prefix == "" {
		return nil, errors.New("prefix cannot be empty for GetByPrefix operation")
	}
	iter := s.client.Collection(kvCollection).
		Where(firestore.DocumentID, ">=", prefix).
		Where(firestore.DocumentID, "<", prefix+"\uf8ff").
		Documents(ctx)
	defer iter.Stop()

	var snaps []*firestore.DocumentSnapshot
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan prefix %q: %w", prefix, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
