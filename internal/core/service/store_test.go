package service

import "context"

// fakeStore is an in-memory ports.Store recording write traffic. failKey
// makes writes to that one key fail while everything else succeeds.
type fakeStore struct {
	data    map[string]string
	sets    int
	deletes int
	failAll bool
	failKey string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

type storeErr string

func (e storeErr) Error() string { return string(e) }

const errStoreDown = storeErr("store unavailable")

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	if f.failAll {
		return "", false, errStoreDown
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	if f.failAll || key == f.failKey {
		return errStoreDown
	}
	f.sets++
	f.data[key] = value
	return nil
}

func (f *fakeStore) Delete(_ context.Context, keys ...string) error {
	if f.failAll {
		return errStoreDown
	}
	f.deletes++
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}
