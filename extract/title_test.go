package extract

import (
	"errors"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		want    string
		wantErr error
	}{
		{
			name: "simple document",
			html: "<html><title>Example Domain</title></html>",
			want: "Example Domain",
		},
		{
			name: "title in head",
			html: "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>Go</title></head><body></body></html>",
			want: "Go",
		},
		{
			name: "surrounding whitespace",
			html: "<title>\n   Spaced Out  \n</title>",
			want: "Spaced Out",
		},
		{
			name: "entities are decoded",
			html: "<title>Tom &amp; Jerry</title>",
			want: "Tom & Jerry",
		},
		{
			name: "first title wins",
			html: "<head><title>First</title></head><body><title>Second</title></body>",
			want: "First",
		},
		{
			name: "empty title",
			html: "<html><head><title></title></head></html>",
			want: "",
		},
		{
			name:    "no title",
			html:    "<html><body><h1>Hello</h1></body></html>",
			wantErr: ErrNoTitle,
		},
		{
			name:    "empty body",
			html:    "",
			wantErr: ErrNoTitle,
		},
		{
			name:    "plain text",
			html:    "just some text",
			wantErr: ErrNoTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Title(tt.html)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Title() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Title() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}
