// Package extract reads page metadata out of HTML documents.
package extract

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTitle is returned when the document has no title element.
var ErrNoTitle = errors.New("no title element found")

// Title returns the text of the first title element of the given HTML
// document, trimmed. An empty title element yields an empty string.
func Title(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	title := doc.Find("title").First()
	if title.Length() == 0 {
		return "", ErrNoTitle
	}
	return strings.TrimSpace(title.Text()), nil
}
