// Package courier composes and sends templated transactional email.
//
// Given an application context, a named template, render-time data, and an
// optional locale/translator pair, it resolves a template directory,
// renders the HTML body, subject line, and plain-text body, inlines CSS
// into the HTML, and hands the result to a pluggable transport.
//
// # Architecture
//
// The package consists of five cooperating parts:
//
//   - GetConfig: merges the application's partial mail configuration onto
//     compiled-in defaults
//   - template resolution: picks one directory for a template identifier
//     from the application, framework, and built-in roots
//   - rendering: classifies the directory's files by role and engine and
//     renders them concurrently
//   - post-processing: CSS inlining and plain-text derivation
//   - dispatch: transport selection, message assembly, and submission
//
// # Usage
//
//	app := &courier.AppContext{
//		Mail:      &courier.Config{Transport: "smtp"},
//		Log:       slog.Default(),
//		Templates: "app/emails",
//	}
//
//	receipt, err := courier.New(app, "welcome", map[string]any{"name": "John"}).
//		Send(ctx, "user@example.com")
//
// # Templates
//
// A template is a directory of files named <role>.<engine>, where the role
// is html, subject, text, or style and the engine is selected by the
// extension token:
//
//   - html, htm, txt, text, css: file content is used verbatim
//   - tmpl, gotmpl: text/template executed against the render data
//   - md, markdown: template pass, then markdown-to-HTML conversion
//
// The html and subject roles are required; text and style are optional.
// When text is absent it is derived from the HTML, and the style role is
// inlined into the HTML together with any linked stylesheets resolvable
// under the configured base path. Templates can read the request data, the
// configured global variables, the locale, and the translator:
//
//	Hello {{.name}}, {{t "welcome.greeting"}}
//
// Template resolution probes the application root, the framework root, and
// the built-in root in order; a name matching none of them degrades to the
// built-in empty template with a logged warning instead of failing, so a
// renamed template never crashes the host application.
//
// # Sending
//
// Composer.Send runs the render pipeline and dispatches the result.
// SendRaw skips templates entirely and submits pre-built content:
//
//	receipt, err := courier.SendRaw(ctx, app, "user@example.com",
//		"Hi", "<h1>Hello</h1>", courier.WithCC("audit@example.com"))
//
// # Transports
//
// Transports are registered by name and selected through Config.Transport.
// Built in: "stub" (the default; accepts everything and returns a UUID
// receipt) and "smtp" (go-mail client). The resend subpackage provides a
// Resend API transport:
//
//	courier.RegisterTransport("resend", resend.Factory)
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrMissingTemplates: html or subject role absent from the directory
//   - ErrMissingFields: SendRaw called without app, to, subject, or html
//   - ErrRenderFailed: template reading, compilation, or evaluation failed
//   - ErrInlineFailed: CSS inlining failed
//   - ErrSendFailed: the transport rejected the message
//   - ErrUnknownTransport: the configured transport has no factory
//
// An unsupported engine token surfaces as *UnsupportedTypeError.
package courier
