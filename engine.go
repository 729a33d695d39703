package courier

// engine identifies how a template file's contents become a final string.
type engine int

const (
	// engineNone marks an extensionless file. It renders to nothing
	// rather than failing.
	engineNone engine = iota

	// engineVerbatim reads the file content as-is.
	engineVerbatim

	// engineTemplate executes the file as a text/template against the
	// render-time data.
	engineTemplate

	// engineMarkdown runs the template pass, then converts the result
	// from markdown to HTML.
	engineMarkdown

	// engineUnsupported fails the render with an UnsupportedTypeError.
	engineUnsupported
)

// engineFor maps a file's extension token (the segment after the first
// dot) to a render engine. Unmatched non-empty tokens are unsupported.
func engineFor(token string) engine {
	switch token {
	case "":
		return engineNone
	case "html", "htm", "txt", "text", "css":
		return engineVerbatim
	case "tmpl", "gotmpl":
		return engineTemplate
	case "md", "markdown":
		return engineMarkdown
	default:
		return engineUnsupported
	}
}
