// Package boltstore implements store.KV on top of a single bbolt file.
package boltstore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github/chapool/pouch-wallet/internal/store"
	bolt "go.etcd.io/bbolt"
)

const (
	// DefaultOpenTimeout bounds how long Open waits for the file lock.
	DefaultOpenTimeout = 2 * time.Second

	fileMode os.FileMode = 0o600
	dirMode  os.FileMode = 0o700
)

// bucketName holds every entry of the store.
var bucketName = []byte("pouch")

type boltStore struct {
	db *bolt.DB
}

// Options configures Open.
type Options struct {
	// Timeout is the maximum wait for the exclusive file lock. Zero uses DefaultOpenTimeout.
	Timeout time.Duration
}

// Open opens (creating if needed) the bolt file at path. The file is only
// readable by the current user.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func Open(path string, opts Options) (store.KV, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOpenTimeout
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return nil, errors.Wrapf(store.ErrUnavailable, "failed to create data directory: %v", err)
	}

	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: opts.Timeout})
	if err != nil {
		return nil, errors.Wrapf(store.ErrUnavailable, "failed to open %s: %v", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(store.ErrUnavailable, "failed to create bucket: %v", err)
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, store.ErrMissingKey
	}

	var (
		value string
		found bool
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return errors.New("bucket not found")
		}

		// bolt values are only valid for the lifetime of the transaction, the
		// string conversion copies them out.
		if v := bucket.Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}

		return nil
	})
	if err != nil {
		return "", false, wrapErr(err, "failed to read key")
	}

	return value, found, nil
}

func (s *boltStore) Set(ctx context.Context, key string, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

func (s *boltStore) SetMany(_ context.Context, entries map[string]string) error {
	for k := range entries {
		if k == "" {
			return store.ErrMissingKey
		}
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return errors.New("bucket not found")
		}

		for k, v := range entries {
			if err := bucket.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return wrapErr(err, "failed to write entries")
	}

	return nil
}

func (s *boltStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return store.ErrMissingKey
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return errors.New("bucket not found")
		}

		return bucket.Delete([]byte(key))
	})
	if err != nil {
		return wrapErr(err, "failed to delete key")
	}

	return nil
}

func (s *boltStore) Close() error {
	if err := s.db.Close(); err != nil {
		return wrapErr(err, "failed to close")
	}

	return nil
}

func wrapErr(err error, msg string) error {
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return errors.Wrap(store.ErrClosed, msg)
	}

	return errors.Wrapf(store.ErrUnavailable, "%s: %v", msg, err)
}
