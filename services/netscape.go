package services

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	nethtml "golang.org/x/net/html"

	"github.com/tbellembois/golinks/types"
)

const netscapeHeader = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
`

const netscapeFooter = "</DL><p>\n"

// Import reads a Netscape bookmark file and saves each link found in
// it. Folders are flattened and links that cannot be fetched, such as
// place: or javascript: ones, are skipped. It returns the number of
// saved bookmarks.
func (s *BookmarkService) Import(r io.Reader) (int, error) {
	root, err := nethtml.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("failed to parse bookmark file: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var bkms []*types.Bookmark
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if err := ValidateURL(href); err != nil {
			log.WithFields(log.Fields{
				"href": href,
				"err":  err,
			}).Debug("Import:skipping link")
			return
		}
		bkms = append(bkms, &types.Bookmark{Title: strings.TrimSpace(a.Text()), URL: href})
	})

	for i, bkm := range bkms {
		log.WithFields(log.Fields{
			"bkm": bkm,
		}).Debug("Import:saving bookmark")

		if err := s.save(bkm); err != nil {
			return i, err
		}
	}
	return len(bkms), nil
}

// Export writes every bookmark to w as a Netscape bookmark file.
func (s *BookmarkService) Export(w io.Writer) error {
	bkms, err := s.ListBookmarks()
	if err != nil {
		return err
	}
	sort.Sort(bkms)

	if _, err := io.WriteString(w, netscapeHeader); err != nil {
		return err
	}
	for _, bkm := range bkms {
		if _, err := fmt.Fprintf(w, "\t<DT><A HREF=\"%s\">%s</A>\n", html.EscapeString(bkm.URL), html.EscapeString(bkm.Title)); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, netscapeFooter)
	return err
}
