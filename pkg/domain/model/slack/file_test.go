package slack_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slacktable/pkg/domain/model/slack"
	libslack "github.com/slack-go/slack"
)

func TestNewFileFromSlack(t *testing.T) {
	t.Run("extracts all metadata from slack file", func(t *testing.T) {
		slackFile := libslack.File{
			ID:         "F12345",
			Name:       "screenshot.png",
			Mimetype:   "image/png",
			Filetype:   "png",
			Size:       102400,
			URLPrivate: "https://files.slack.com/files-pri/T123-F12345/screenshot.png",
			Permalink:  "https://myworkspace.slack.com/files/U123/F12345/screenshot.png",
			Thumb1024:  "https://files.slack.com/files-tmb/T123-F12345/screenshot_1024.png",
			Thumb720:   "https://files.slack.com/files-tmb/T123-F12345/screenshot_720.png",
			Thumb480:   "https://files.slack.com/files-tmb/T123-F12345/screenshot_480.png",
		}

		f := slack.NewFileFromSlack(slackFile)

		gt.Value(t, f.ID()).Equal("F12345")
		gt.Value(t, f.Name()).Equal("screenshot.png")
		gt.Value(t, f.Mimetype()).Equal("image/png")
		gt.Value(t, f.Size()).Equal(102400)
		gt.Value(t, f.ThumbURL()).Equal("https://files.slack.com/files-tmb/T123-F12345/screenshot_1024.png")
	})

	t.Run("selects best available thumbnail", func(t *testing.T) {
		slackFile := libslack.File{
			ID:       "F12345",
			Mimetype: "image/png",
			Thumb160: "https://files.slack.com/thumb_160.png",
			Thumb80:  "https://files.slack.com/thumb_80.png",
		}

		f := slack.NewFileFromSlack(slackFile)
		gt.Value(t, f.ThumbURL()).Equal("https://files.slack.com/thumb_160.png")
	})
}

func TestFileIsImage(t *testing.T) {
	t.Run("image mimetypes are images", func(t *testing.T) {
		for _, mt := range []string{"image/png", "image/jpeg", "image/gif"} {
			f := slack.NewFileFromSlack(libslack.File{Mimetype: mt})
			gt.Bool(t, f.IsImage()).True()
		}
	})

	t.Run("non-image mimetypes are not", func(t *testing.T) {
		for _, mt := range []string{"application/pdf", "text/plain", "video/mp4", ""} {
			f := slack.NewFileFromSlack(libslack.File{Mimetype: mt})
			gt.Bool(t, f.IsImage()).False()
		}
	})
}

func TestFileRecordURL(t *testing.T) {
	t.Run("prefers thumbnail over url_private", func(t *testing.T) {
		f := slack.NewFileFromSlack(libslack.File{
			Mimetype:   "image/png",
			URLPrivate: "https://files.slack.com/private.png",
			Thumb480:   "https://files.slack.com/thumb_480.png",
		})
		gt.Value(t, f.RecordURL()).Equal("https://files.slack.com/thumb_480.png")
	})

	t.Run("falls back to url_private then permalink", func(t *testing.T) {
		f := slack.NewFileFromSlack(libslack.File{
			Mimetype:   "image/png",
			URLPrivate: "https://files.slack.com/private.png",
		})
		gt.Value(t, f.RecordURL()).Equal("https://files.slack.com/private.png")

		f = slack.NewFileFromSlack(libslack.File{
			Mimetype:  "image/png",
			Permalink: "https://myworkspace.slack.com/files/p.png",
		})
		gt.Value(t, f.RecordURL()).Equal("https://myworkspace.slack.com/files/p.png")
	})
}
