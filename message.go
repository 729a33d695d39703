package courier

import "fmt"

// Message is the assembled payload handed to a transport. It is owned by
// the dispatch call and never retained after the transport returns.
type Message struct {
	From        string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	To          []string
	CC          []string
	BCC         []string
	Headers     map[string]string
	Attachments []Attachment
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // optional Content-ID for inline attachments
	Content     []byte // raw file content
}

// Receipt is the transport's delivery result. The core treats it as
// opaque success; only the transport gives its fields meaning.
type Receipt struct {
	MessageID string
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// MessageOption mutates the assembled message before dispatch. Options are
// applied after the base fields, so they may override any of them.
type MessageOption func(*Message)

// WithText sets an explicit plain-text body, suppressing derivation from
// the HTML.
func WithText(text string) MessageOption {
	return func(m *Message) { m.Text = text }
}

// WithFrom overrides the sender address resolved from configuration.
func WithFrom(from string) MessageOption {
	return func(m *Message) {
		if from != "" {
			m.From = from
		}
	}
}

// WithReplyTo sets the reply-to address.
func WithReplyTo(addr string) MessageOption {
	return func(m *Message) { m.ReplyTo = addr }
}

// WithCC adds carbon-copy recipients.
func WithCC(addrs ...string) MessageOption {
	return func(m *Message) { m.CC = append(m.CC, addrs...) }
}

// WithBCC adds blind carbon-copy recipients.
func WithBCC(addrs ...string) MessageOption {
	return func(m *Message) { m.BCC = append(m.BCC, addrs...) }
}

// WithHeader sets a custom message header.
func WithHeader(key, value string) MessageOption {
	return func(m *Message) {
		if m.Headers == nil {
			m.Headers = make(map[string]string)
		}
		m.Headers[key] = value
	}
}

// WithAttachment adds a file attachment.
func WithAttachment(a Attachment) MessageOption {
	return func(m *Message) { m.Attachments = append(m.Attachments, a) }
}
