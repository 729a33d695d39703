package courier

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTemplates indicates the resolved template directory lacks
	// the required html or subject file.
	ErrMissingTemplates = errors.New("Template HTML and Subject must be provided")

	// ErrMissingFields indicates a required SendRaw argument was absent.
	// Validation is combined: the message lists every required field.
	ErrMissingFields = errors.New("App, to, subject and html is required fields.")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInlineFailed indicates CSS inlining or plain-text derivation failed.
	ErrInlineFailed = errors.New("failed to inline styles")

	// ErrSendFailed indicates the transport rejected the message.
	ErrSendFailed = errors.New("failed to send email")

	// ErrUnknownTransport indicates the configured transport name has no
	// registered factory.
	ErrUnknownTransport = errors.New("unknown transport")
)

// UnsupportedTypeError reports a template file whose engine token maps to
// no known render engine. Extensionless files never produce this error;
// they render to nothing instead.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Template type %s is not supported", e.Type)
}
