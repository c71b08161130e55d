package models

import (
	"github.com/tbellembois/golinks/types"
)

// Datastore is a bookmarks key-value storage interface.
// Bookmarks are keyed by URL. The methods record their last error,
// callers check it with FlushErrors.
type Datastore interface {
	FlushErrors() error
	Close() error

	SaveBookmark(*types.Bookmark)
	GetBookmarks() types.Bookmarks
	ClearBookmarks()
}
