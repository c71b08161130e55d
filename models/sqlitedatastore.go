package models

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
	log "github.com/sirupsen/logrus"
	"github.com/tbellembois/golinks/types"
)

const (
	dbdriver = "sqlite3"
)

var errEmptyURL = errors.New("bookmark URL is empty")

// SQLiteDataStore implements the Datastore interface
// to store the bookmarks in SQLite3 as url -> JSON rows.
type SQLiteDataStore struct {
	*sql.DB
	err error
}

// NewDBstore returns a database connection to the given dataSourceName
// ie. a path to the sqlite database file.
func NewDBstore(dataSourceName string) (*SQLiteDataStore, error) {
	log.WithFields(log.Fields{
		"dataSourceName": dataSourceName,
	}).Debug("NewDBstore:params")

	var (
		db  *sql.DB
		err error
	)

	if db, err = sql.Open(dbdriver, dataSourceName); err != nil {
		log.WithFields(log.Fields{
			"dataSourceName": dataSourceName,
		}).Error("NewDBstore:error opening the database")
		return nil, err
	}
	// One writer at a time, each statement is atomic per key.
	db.SetMaxOpenConns(1)

	return &SQLiteDataStore{db, nil}, nil
}

// FlushErrors returns the last DB errors and flushes it.
func (db *SQLiteDataStore) FlushErrors() error {
	// Saving the last thrown error.
	lastError := db.err
	// Resetting the error.
	db.err = nil
	// Returning the last error.
	return lastError
}

// CreateDatabase creates the database tables.
func (db *SQLiteDataStore) CreateDatabase() {
	log.Info("Creating database")

	if _, db.err = db.Exec(`CREATE TABLE IF NOT EXISTS bookmark ( url TEXT PRIMARY KEY, value TEXT NOT NULL)`); db.err != nil {
		log.Error("CreateDatabase: error executing the CREATE TABLE request for table bookmark:" + db.err.Error())
		return
	}
}

// SaveBookmark stores the given Bookmark under its URL,
// replacing any previous value.
func (db *SQLiteDataStore) SaveBookmark(bkm *types.Bookmark) {
	log.WithFields(log.Fields{
		"bkm": bkm,
	}).Debug("SaveBookmark")
	// Leaving silently on past errors...
	if db.err != nil {
		return
	}
	if bkm.URL == "" {
		db.err = errEmptyURL
		return
	}

	if _, db.err = db.Exec("INSERT OR REPLACE INTO bookmark(url, value) values(?, ?)", bkm.URL, bkm.String()); db.err != nil {
		log.WithFields(log.Fields{
			"err": db.err,
		}).Error("SaveBookmark:INSERT query error")
	}
}

// GetBookmarks returns every stored bookmark.
func (db *SQLiteDataStore) GetBookmarks() types.Bookmarks {
	// Leaving silently on past errors...
	if db.err != nil {
		return nil
	}

	// Querying the bookmarks.
	var (
		rows *sql.Rows
		bkms = types.Bookmarks{}
	)
	if rows, db.err = db.Query("SELECT value FROM bookmark"); db.err != nil {
		log.WithFields(log.Fields{
			"err": db.err,
		}).Error("GetBookmarks:SELECT query error")
		return nil
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.WithFields(log.Fields{
				"err": err,
			}).Error("GetBookmarks:error closing rows")
		}
	}()

	for rows.Next() {
		var value string
		if db.err = rows.Scan(&value); db.err != nil {
			log.WithFields(log.Fields{
				"err": db.err,
			}).Error("GetBookmarks:error scanning the query result row")
			return nil
		}
		// Building a new Bookmark instance with each row.
		var bkm *types.Bookmark
		if bkm, db.err = types.ParseBookmark(value); db.err != nil {
			log.WithFields(log.Fields{
				"err":   db.err,
				"value": value,
			}).Error("GetBookmarks:error decoding the stored value")
			return nil
		}
		bkms = append(bkms, bkm)
	}
	if db.err = rows.Err(); db.err != nil {
		log.WithFields(log.Fields{
			"err": db.err,
		}).Error("GetBookmarks:error looping rows")
		return nil
	}
	return bkms
}

// ClearBookmarks removes all the bookmarks.
func (db *SQLiteDataStore) ClearBookmarks() {
	log.Debug("ClearBookmarks")
	// Leaving silently on past errors...
	if db.err != nil {
		return
	}

	if _, db.err = db.Exec("DELETE FROM bookmark"); db.err != nil {
		log.WithFields(log.Fields{
			"err": db.err,
		}).Error("ClearBookmarks:DELETE query error")
	}
}
