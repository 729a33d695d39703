package courier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

const smtpTimeout = 30 * time.Second

// smtpTransport delivers messages over SMTP using go-mail, with TLS policy
// derived from the port and auth auto-discovered when credentials are set.
type smtpTransport struct {
	cfg TransportConfig
}

func newSMTPTransport(cfg TransportConfig) (Transport, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp transport requires a host")
	}
	return &smtpTransport{cfg: cfg}, nil
}

func (t *smtpTransport) SendMail(ctx context.Context, m *Message) (*Receipt, error) {
	msg := mail.NewMsg()

	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.To...); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	if len(m.CC) > 0 {
		if err := msg.Cc(m.CC...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	if len(m.BCC) > 0 {
		if err := msg.Bcc(m.BCC...); err != nil {
			return nil, fmt.Errorf("invalid bcc address: %w", err)
		}
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	msg.Subject(m.Subject)

	// Prefer multipart/alternative with the text part first.
	switch {
	case m.HTML != "" && m.Text != "":
		msg.SetBodyString(mail.TypeTextPlain, m.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	case m.HTML != "":
		msg.SetBodyString(mail.TypeTextHTML, m.HTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, m.Text)
	}

	for key, value := range m.Headers {
		msg.SetGenHeader(mail.Header(key), value)
	}
	for _, att := range m.Attachments {
		if err := msg.AttachReader(att.Filename, bytes.NewReader(att.Content),
			mail.WithFileContentType(mail.ContentType(att.ContentType))); err != nil {
			return nil, fmt.Errorf("attach %s: %w", att.Filename, err)
		}
	}

	client, err := mail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return nil, fmt.Errorf("smtp send: %w", err)
	}

	// SMTP does not report a message ID reliably; synthesize one.
	return &Receipt{MessageID: "smtp-" + uuid.NewString()}, nil
}

func (t *smtpTransport) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithTimeout(smtpTimeout),
	}

	switch t.cfg.Port {
	case 465:
		// Implicit TLS (SMTPS)
		opts = append(opts, mail.WithSSL())
	case 587:
		// STARTTLS submission port
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		// Plain SMTP or local relays: opportunistic STARTTLS
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if t.cfg.Username != "" && t.cfg.Password != "" {
		opts = append(opts,
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
			mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
		)
	}
	return opts
}
