package test

import (
	"context"
	"sync"

	"github/chapool/pouch-wallet/internal/store"
)

// FaultyKV wraps a store.KV and fails selected calls with store.ErrUnavailable.
type FaultyKV struct {
	store.KV

	mu           sync.Mutex
	failAll      bool
	failWrites   bool
	failDeletes  map[string]bool
	failedWrites int
}

var _ store.KV = (*FaultyKV)(nil)

func NewFaultyKV(kv store.KV) *FaultyKV {
	return &FaultyKV{
		KV:          kv,
		failDeletes: make(map[string]bool),
	}
}

// FailAll makes every call fail while enabled.
func (f *FaultyKV) FailAll(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failAll = enabled
}

// FailWrites makes Set and SetMany fail while enabled.
func (f *FaultyKV) FailWrites(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failWrites = enabled
}

// FailDelete makes deletions of the given keys fail.
func (f *FaultyKV) FailDelete(keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, k := range keys {
		f.failDeletes[k] = true
	}
}

// FailedWrites returns the number of rejected Set and SetMany calls.
func (f *FaultyKV) FailedWrites() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.failedWrites
}

func (f *FaultyKV) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	fail := f.failAll
	f.mu.Unlock()

	if fail {
		return "", false, store.ErrUnavailable
	}

	return f.KV.Get(ctx, key)
}

func (f *FaultyKV) Set(ctx context.Context, key string, value string) error {
	return f.SetMany(ctx, map[string]string{key: value})
}

func (f *FaultyKV) SetMany(ctx context.Context, entries map[string]string) error {
	f.mu.Lock()
	fail := f.failAll || f.failWrites
	if fail {
		f.failedWrites++
	}
	f.mu.Unlock()

	if fail {
		return store.ErrUnavailable
	}

	return f.KV.SetMany(ctx, entries)
}

func (f *FaultyKV) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failAll || f.failDeletes[key]
	f.mu.Unlock()

	if fail {
		return store.ErrUnavailable
	}

	return f.KV.Delete(ctx, key)
}
