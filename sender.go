package courier

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Transport delivers an assembled message. Implementations may raise
// transport-specific errors; the core propagates them unchanged and never
// retries.
type Transport interface {
	SendMail(ctx context.Context, msg *Message) (*Receipt, error)
}

// TransportFactory builds a Transport from its configuration sub-object.
type TransportFactory func(cfg TransportConfig) (Transport, error)

var transportRegistry = struct {
	sync.RWMutex
	factories map[string]TransportFactory
}{
	factories: map[string]TransportFactory{
		"stub": newStubTransport,
		"smtp": newSMTPTransport,
	},
}

// RegisterTransport makes a transport factory selectable by name through
// Config.Transport. Registering an existing name replaces the factory.
func RegisterTransport(name string, factory TransportFactory) {
	transportRegistry.Lock()
	defer transportRegistry.Unlock()
	transportRegistry.factories[name] = factory
}

func newTransport(name string, cfg TransportConfig) (Transport, error) {
	transportRegistry.RLock()
	factory, ok := transportRegistry.factories[name]
	transportRegistry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransport, name)
	}
	return factory(cfg)
}

// SendRaw assembles and submits a message without touching templates.
// It validates app, to, subject and html together, raising one combined
// error before any transport is constructed. A missing text body is
// derived from the HTML, a missing from address comes from the effective
// configuration, and extra options layer on top of every assembled field.
// The transport's receipt is returned opaquely.
func SendRaw(ctx context.Context, app App, to, subject, html string, opts ...MessageOption) (*Receipt, error) {
	if app == nil || to == "" || subject == "" || html == "" {
		return nil, ErrMissingFields
	}

	cfg := GetConfig(app)
	msg := &Message{
		From:    cfg.From,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}
	for _, opt := range opts {
		opt(msg)
	}

	if msg.Text == "" {
		text, err := htmlToText(msg.HTML)
		if err != nil {
			return nil, errors.Join(ErrSendFailed, err)
		}
		msg.Text = text
	}

	transport, err := newTransport(cfg.Transport, cfg.Transports[cfg.Transport])
	if err != nil {
		return nil, err
	}

	receipt, err := transport.SendMail(ctx, msg)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	return receipt, nil
}

// stubTransport accepts every message without delivering anything. It is
// the default transport, so an unconfigured application never touches the
// network.
type stubTransport struct{}

func newStubTransport(TransportConfig) (Transport, error) {
	return stubTransport{}, nil
}

func (stubTransport) SendMail(_ context.Context, _ *Message) (*Receipt, error) {
	return &Receipt{MessageID: uuid.NewString()}, nil
}
