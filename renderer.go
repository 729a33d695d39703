package courier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
)

// Template roles: the logical purpose of a file within a template
// directory, taken from its base name before the first dot.
const (
	roleHTML    = "html"
	roleSubject = "subject"
	roleText    = "text"
	roleStyle   = "style"
)

// templateFile is one classified file within a resolved template directory.
type templateFile struct {
	name   string // filename within the directory
	token  string // extension token after the first dot
	engine engine
}

// Artifacts holds the outputs of a single render call. They live for the
// call only; nothing is cached or persisted.
type Artifacts struct {
	HTML        string // rendered HTML body, before CSS inlining
	Subject     string
	Text        string // explicit text body, or derived from the HTML
	InlinedHTML string
}

// listTemplates reads the directory's immediate files and classifies each
// by role. Entries come back sorted from ReadDir, so when two files claim
// the same role the lexicographically greatest filename wins. Files whose
// role is not one of html/subject/text/style are ignored.
func listTemplates(loc location) (map[string]templateFile, error) {
	entries, err := fs.ReadDir(loc.fsys, loc.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	files := make(map[string]templateFile, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parts := strings.Split(entry.Name(), ".")
		role := parts[0]
		switch role {
		case roleHTML, roleSubject, roleText, roleStyle:
		default:
			continue
		}
		token := ""
		if len(parts) > 1 {
			token = parts[1]
		}
		files[role] = templateFile{
			name:   entry.Name(),
			token:  token,
			engine: engineFor(token),
		}
	}
	return files, nil
}

// Render reads the resolved template directory and produces the rendered
// artifacts. The directory is re-listed on every call, so templates that
// change between calls are picked up; for unchanged contents the call is
// idempotent. The html and subject roles are required, text and style are
// optional, and the present roles render concurrently.
func (c *Composer) Render(ctx context.Context) (*Artifacts, error) {
	files, err := listTemplates(c.loc)
	if err != nil {
		return nil, err
	}
	if _, ok := files[roleHTML]; !ok {
		return nil, ErrMissingTemplates
	}
	if _, ok := files[roleSubject]; !ok {
		return nil, ErrMissingTemplates
	}

	cfg := GetConfig(c.app)
	data := c.renderData(cfg)

	var html, subject, text, style string
	var group errgroup.Group
	renderRole := func(role string, dst *string) {
		file, ok := files[role]
		if !ok {
			return
		}
		group.Go(func() error {
			out, err := c.renderFile(file, data)
			if err != nil {
				return err
			}
			*dst = out
			return nil
		})
	}
	renderRole(roleHTML, &html)
	renderRole(roleSubject, &subject)
	renderRole(roleText, &text)
	renderRole(roleStyle, &style)
	if err := group.Wait(); err != nil {
		return nil, err
	}

	artifacts := &Artifacts{
		HTML:    html,
		Subject: strings.TrimSpace(subject),
		Text:    text,
	}

	inlined, err := inlineCSS(html, style, cfg.WebResources)
	if err != nil {
		return nil, errors.Join(ErrInlineFailed, err)
	}
	artifacts.InlinedHTML = inlined

	if artifacts.Text == "" {
		derived, err := htmlToText(html)
		if err != nil {
			return nil, errors.Join(ErrRenderFailed, err)
		}
		artifacts.Text = derived
	}
	return artifacts, nil
}

// renderData assembles the mapping handed to the template engines: global
// variables from the effective configuration, overlaid by the request's
// data, plus the locale. The translator is exposed separately as the "t"
// template function.
func (c *Composer) renderData(cfg Config) map[string]any {
	data := make(map[string]any, len(cfg.GlobalVariables)+len(c.data)+1)
	maps.Copy(data, cfg.GlobalVariables)
	maps.Copy(data, c.data)
	data["locale"] = c.locale
	return data
}

func (c *Composer) renderFile(file templateFile, data map[string]any) (string, error) {
	switch file.engine {
	case engineNone:
		return "", nil
	case engineVerbatim:
		raw, err := fs.ReadFile(c.loc.fsys, path.Join(c.loc.dir, file.name))
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, file.name, err)
		}
		return string(raw), nil
	case engineTemplate:
		return c.execTemplate(file, data)
	case engineMarkdown:
		md, err := c.execTemplate(file, data)
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(md), &buf); err != nil {
			return "", fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
		}
		return buf.String(), nil
	default:
		return "", &UnsupportedTypeError{Type: file.token}
	}
}

// execTemplate compiles the file with the render-time data and evaluates
// it to a string.
func (c *Composer) execTemplate(file templateFile, data map[string]any) (string, error) {
	raw, err := fs.ReadFile(c.loc.fsys, path.Join(c.loc.dir, file.name))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, file.name, err)
	}

	tmpl, err := texttemplate.New(file.name).
		Funcs(texttemplate.FuncMap{"t": c.translate}).
		Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, file.name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, file.name, err)
	}
	return buf.String(), nil
}
