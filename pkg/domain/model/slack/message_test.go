package slack_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slacktable/pkg/domain/model/slack"
	libslack "github.com/slack-go/slack"
)

func TestNewMessageFromAPI(t *testing.T) {
	apiMsg := &libslack.Message{
		Msg: libslack.Msg{
			Timestamp: "1234567890.123",
			User:      "U67890",
			Text:      "app crashes on save",
			Files: []libslack.File{
				{ID: "F1", Mimetype: "image/png", URLPrivate: "https://files.slack.com/one.png"},
				{ID: "F2", Mimetype: "application/pdf", URLPrivate: "https://files.slack.com/doc.pdf"},
			},
		},
	}

	msg := slack.NewMessageFromAPI(apiMsg, "C12345")

	gt.Value(t, msg.ChannelID()).Equal("C12345")
	gt.Value(t, msg.TS()).Equal("1234567890.123")
	gt.Value(t, msg.UserID()).Equal("U67890")
	gt.Value(t, msg.Text()).Equal("app crashes on save")
	gt.Number(t, len(msg.Files())).Equal(2)
}

func TestMessageImageURLs(t *testing.T) {
	imageFile := func(i int) slack.File {
		return slack.NewFileFromSlack(libslack.File{
			ID:         fmt.Sprintf("F%d", i),
			Mimetype:   "image/png",
			URLPrivate: fmt.Sprintf("https://files.slack.com/img_%d.png", i),
		})
	}

	t.Run("no attachments yields no URLs", func(t *testing.T) {
		msg := slack.NewMessage("C1", "100.1", "U1", "text only", nil)
		gt.Number(t, len(msg.ImageURLs(3))).Equal(0)
	})

	t.Run("non-image attachments are excluded", func(t *testing.T) {
		files := []slack.File{
			slack.NewFileFromSlack(libslack.File{ID: "F1", Mimetype: "application/pdf", URLPrivate: "https://x/doc.pdf"}),
			imageFile(2),
		}
		msg := slack.NewMessage("C1", "100.1", "U1", "", files)

		urls := msg.ImageURLs(3)
		gt.Number(t, len(urls)).Equal(1)
		gt.Value(t, urls[0]).Equal("https://files.slack.com/img_2.png")
	})

	t.Run("five images truncate to the first three in encounter order", func(t *testing.T) {
		var files []slack.File
		for i := 1; i <= 5; i++ {
			files = append(files, imageFile(i))
		}
		msg := slack.NewMessage("C1", "100.1", "U1", "", files)

		urls := msg.ImageURLs(3)
		gt.Number(t, len(urls)).Equal(3)
		gt.Value(t, urls[0]).Equal("https://files.slack.com/img_1.png")
		gt.Value(t, urls[1]).Equal("https://files.slack.com/img_2.png")
		gt.Value(t, urls[2]).Equal("https://files.slack.com/img_3.png")
	})

	t.Run("images without any URL are skipped", func(t *testing.T) {
		files := []slack.File{
			slack.NewFileFromSlack(libslack.File{ID: "F1", Mimetype: "image/png"}),
			imageFile(2),
		}
		msg := slack.NewMessage("C1", "100.1", "U1", "", files)

		urls := msg.ImageURLs(3)
		gt.Number(t, len(urls)).Equal(1)
	})
}
