package courier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  engine
	}{
		{"html", engineVerbatim},
		{"htm", engineVerbatim},
		{"txt", engineVerbatim},
		{"text", engineVerbatim},
		{"css", engineVerbatim},
		{"tmpl", engineTemplate},
		{"gotmpl", engineTemplate},
		{"md", engineMarkdown},
		{"markdown", engineMarkdown},
		{"pug", engineUnsupported},
		{"fakeExtension", engineUnsupported},
		// An extensionless file degrades silently instead of failing.
		// The asymmetry with unsupported tokens is intentional.
		{"", engineNone},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, engineFor(tt.token), "token %q", tt.token)
	}
}
