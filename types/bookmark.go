package types

import (
	"encoding/json"
	"strings"
)

// Bookmark is a saved page. Its URL is the storage key.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Bookmarks implements the sort interface
type Bookmarks []*Bookmark

func (b Bookmarks) Len() int {
	return len(b)
}

func (b Bookmarks) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

// Less orders by case-insensitive title, then by URL without its scheme.
func (b Bookmarks) Less(i, j int) bool {
	title1 := strings.ToLower(b[i].Title)
	title2 := strings.ToLower(b[j].Title)
	if title1 != title2 {
		return title1 < title2
	}
	return stripScheme(b[i].URL) < stripScheme(b[j].URL)
}

func stripScheme(u string) string {
	if i := strings.Index(u, "//"); i >= 0 {
		return u[i+2:]
	}
	return u
}

// String returns the JSON form of the bookmark, the value stored
// under its URL.
func (bk *Bookmark) String() string {
	var out []byte
	var err error

	if out, err = json.Marshal(bk); err != nil {
		return ""
	}
	return string(out)
}

// ParseBookmark decodes a stored JSON value.
func ParseBookmark(s string) (*Bookmark, error) {
	bk := new(Bookmark)
	if err := json.Unmarshal([]byte(s), bk); err != nil {
		return nil, err
	}
	return bk, nil
}
