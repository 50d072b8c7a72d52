package slack

import (
	libslack "github.com/slack-go/slack"
)

// Message is a resolved Slack message: the content a reaction points at.
// When the reaction targets a thread reply, this is the reply itself,
// never the thread parent.
type Message struct {
	channelID string
	ts        string
	userID    string
	text      string
	files     []File
}

// NewMessage creates a Message from raw values
func NewMessage(channelID, ts, userID, text string, files []File) *Message {
	return &Message{
		channelID: channelID,
		ts:        ts,
		userID:    userID,
		text:      text,
		files:     files,
	}
}

// NewMessageFromAPI creates a Message from a slack-go API message.
// conversations.history and conversations.replies responses do not carry
// the channel ID, so it is passed in from the triggering event.
func NewMessageFromAPI(msg *libslack.Message, channelID string) *Message {
	files := make([]File, 0, len(msg.Files))
	for _, f := range msg.Files {
		files = append(files, NewFileFromSlack(f))
	}

	return &Message{
		channelID: channelID,
		ts:        msg.Timestamp,
		userID:    msg.User,
		text:      msg.Text,
		files:     files,
	}
}

// Getters to maintain immutability
func (m *Message) ChannelID() string { return m.channelID }
func (m *Message) TS() string        { return m.ts }
func (m *Message) UserID() string    { return m.userID }
func (m *Message) Text() string      { return m.text }

// Files returns a copy of the attachment list in encounter order
func (m *Message) Files() []File {
	files := make([]File, len(m.files))
	copy(files, m.files)
	return files
}

// ImageURLs returns the record URLs of image attachments in encounter
// order, truncated to at most max entries. Non-image attachments and
// images without any retrievable URL are excluded.
func (m *Message) ImageURLs(max int) []string {
	var urls []string
	for _, f := range m.files {
		if len(urls) >= max {
			break
		}
		if !f.IsImage() {
			continue
		}
		if url := f.RecordURL(); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
