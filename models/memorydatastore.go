package models

import (
	"github.com/tbellembois/golinks/types"
)

// MemoryDataStore implements the Datastore interface in memory.
// Values are kept serialized, as in the SQLite store.
type MemoryDataStore struct {
	data map[string]string
	err  error
}

// NewMemoryStore returns an empty in-memory datastore.
func NewMemoryStore() *MemoryDataStore {
	return &MemoryDataStore{
		data: make(map[string]string),
	}
}

// FlushErrors returns the last error and flushes it.
func (db *MemoryDataStore) FlushErrors() error {
	lastError := db.err
	db.err = nil
	return lastError
}

func (db *MemoryDataStore) Close() error {
	return nil
}

func (db *MemoryDataStore) SaveBookmark(bkm *types.Bookmark) {
	if db.err != nil {
		return
	}
	if bkm.URL == "" {
		db.err = errEmptyURL
		return
	}
	db.data[bkm.URL] = bkm.String()
}

func (db *MemoryDataStore) GetBookmarks() types.Bookmarks {
	if db.err != nil {
		return nil
	}

	bkms := make(types.Bookmarks, 0, len(db.data))
	for _, value := range db.data {
		var bkm *types.Bookmark
		if bkm, db.err = types.ParseBookmark(value); db.err != nil {
			return nil
		}
		bkms = append(bkms, bkm)
	}
	return bkms
}

func (db *MemoryDataStore) ClearBookmarks() {
	if db.err != nil {
		return
	}
	db.data = make(map[string]string)
}
