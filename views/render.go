package views

import (
	"html/template"
	"io"
	"sort"

	"github.com/tbellembois/golinks/types"
)

// Page is the data passed to the main template.
type Page struct {
	Bkms          types.Bookmarks
	Error         string
	GoBkmProxyURL string
}

// NewPage builds the page for bkms with the presenter's current state.
// bkms is copied and sorted for display.
func (p *Presenter) NewPage(bkms types.Bookmarks, proxyURL string) Page {
	sorted := make(types.Bookmarks, len(bkms))
	copy(sorted, bkms)
	sort.Sort(sorted)

	return Page{
		Bkms:          sorted,
		Error:         p.Message(),
		GoBkmProxyURL: proxyURL,
	}
}

// ParseTemplate parses the main page template.
func ParseTemplate(data string) (*template.Template, error) {
	return template.New("main").Parse(data)
}

// Render writes the page, one entry per bookmark.
func Render(w io.Writer, tpl *template.Template, page Page) error {
	return tpl.Execute(w, page)
}
