// Package resend provides a courier transport backed by the Resend API.
//
// Register it under the name the mail configuration selects:
//
//	courier.RegisterTransport("resend", resend.Factory)
package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/courierkit/courier"
)

// Transport implements courier.Transport using the Resend API.
type Transport struct {
	client     *resend.Client
	senderName string
}

// Factory builds a Resend transport from its settings sub-object. It
// reads the APIKey and SenderName fields.
func Factory(cfg courier.TransportConfig) (courier.Transport, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("resend: api key is required")
	}
	return New(Config{APIKey: cfg.APIKey, SenderName: cfg.SenderName}), nil
}

// New creates a Resend transport from a typed config.
func New(cfg Config) *Transport {
	return &Transport{
		client:     resend.NewClient(cfg.APIKey),
		senderName: cfg.SenderName,
	}
}

// SendMail implements courier.Transport.
func (t *Transport) SendMail(ctx context.Context, msg *courier.Message) (*courier.Receipt, error) {
	from := msg.From
	if t.senderName != "" {
		from = courier.Recipient(t.senderName, msg.From)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
		Cc:      msg.CC,
		Bcc:     msg.BCC,
		Headers: msg.Headers,
	}
	if len(msg.Attachments) > 0 {
		req.Attachments = convertAttachments(msg.Attachments)
	}

	sent, err := t.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", err)
	}
	return &courier.Receipt{MessageID: sent.Id}, nil
}

func convertAttachments(attachments []courier.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return result
}
