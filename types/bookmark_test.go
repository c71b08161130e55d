package types

import (
	"errors"
	"fmt"
	"sort"
	"testing"
)

func TestBookmark_String(t *testing.T) {
	bk := &Bookmark{Title: "Example Domain", URL: "https://example.com"}
	want := `{"title":"Example Domain","url":"https://example.com"}`
	if got := bk.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}

	// An empty title is still serialized.
	bk = &Bookmark{URL: "https://example.com"}
	want = `{"title":"","url":"https://example.com"}`
	if got := bk.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestParseBookmark(t *testing.T) {
	bk, err := ParseBookmark(`{"title":"Go","url":"https://go.dev"}`)
	if err != nil {
		t.Fatalf("ParseBookmark() error: %v", err)
	}
	if bk.Title != "Go" || bk.URL != "https://go.dev" {
		t.Errorf("ParseBookmark() = %+v", bk)
	}

	if _, err := ParseBookmark("not json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestBookmarks_Sort(t *testing.T) {
	bkms := Bookmarks{
		{Title: "zeta", URL: "https://z.example"},
		{Title: "Alpha", URL: "https://b.example"},
		{Title: "alpha", URL: "http://a.example"},
		{Title: "", URL: "noscheme"},
	}
	sort.Sort(bkms)

	want := []string{"noscheme", "http://a.example", "https://b.example", "https://z.example"}
	for i, bk := range bkms {
		if bk.URL != want[i] {
			t.Errorf("position %d = %s, want %s", i, bk.URL, want[i])
		}
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "same kind",
			err:    NewError(KindNetwork, "https://example.com", errors.New("refused")),
			target: ErrNetwork,
			want:   true,
		},
		{
			name:   "other kind",
			err:    NewError(KindNetwork, "https://example.com", errors.New("refused")),
			target: ErrExtraction,
			want:   false,
		},
		{
			name:   "wrapped",
			err:    fmt.Errorf("adding: %w", NewError(KindStorage, "u", errors.New("full"))),
			target: ErrStorage,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(KindNetwork, "https://example.com", cause)

	if got, want := err.Error(), "network error: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to be unwrapped")
	}
	if got, want := ErrValidation.Error(), "validation error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
