package slack

import (
	"strings"

	libslack "github.com/slack-go/slack"
)

// File represents a Slack file attachment metadata
type File struct {
	id         string
	name       string
	mimetype   string
	filetype   string
	size       int
	urlPrivate string
	permalink  string
	thumbURL   string
}

// NewFileFromSlack creates a File from a slack-go File struct
func NewFileFromSlack(f libslack.File) File {
	return File{
		id:         f.ID,
		name:       f.Name,
		mimetype:   f.Mimetype,
		filetype:   f.Filetype,
		size:       f.Size,
		urlPrivate: f.URLPrivate,
		permalink:  f.Permalink,
		thumbURL:   bestThumbURL(f),
	}
}

// Getters
func (f File) ID() string         { return f.id }
func (f File) Name() string       { return f.name }
func (f File) Mimetype() string   { return f.mimetype }
func (f File) Filetype() string   { return f.filetype }
func (f File) Size() int          { return f.size }
func (f File) URLPrivate() string { return f.urlPrivate }
func (f File) Permalink() string  { return f.permalink }
func (f File) ThumbURL() string   { return f.thumbURL }

// IsImage reports whether the file is an image attachment
func (f File) IsImage() bool {
	return strings.HasPrefix(f.mimetype, "image/")
}

// RecordURL returns the URL stored in the outbound record. Thumbnails are
// preferred because they render without Slack authentication; url_private
// and the permalink are fallbacks.
func (f File) RecordURL() string {
	if f.thumbURL != "" {
		return f.thumbURL
	}
	if f.urlPrivate != "" {
		return f.urlPrivate
	}
	return f.permalink
}

// bestThumbURL selects the best available thumbnail URL from a Slack file.
// It prefers larger thumbnails for better display quality.
func bestThumbURL(f libslack.File) string {
	candidates := []string{
		f.Thumb1024,
		f.Thumb960,
		f.Thumb720,
		f.Thumb480,
		f.Thumb360,
		f.Thumb160,
		f.Thumb80,
		f.Thumb64,
	}

	for _, url := range candidates {
		if url != "" {
			return url
		}
	}
	return ""
}
