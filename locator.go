package courier

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

//go:embed templates
var builtinFS embed.FS

// builtinRoot is the module's own template root, the last probe candidate.
const builtinRoot = "templates"

// fallbackTemplate is the built-in empty template used when no candidate
// directory matches.
const fallbackTemplate = "empty"

// location is a resolved template directory.
type location struct {
	fsys fs.FS
	dir  string
}

// resolveTemplate picks the directory for a template identifier. Absolute
// paths are used directly, without a precedence search. Bare names are
// reduced to their final path segment and probed against the application
// root, the framework root, and the built-in root, in that order; the
// first existing directory wins. When nothing matches, the built-in empty
// template is returned and a single warning is logged. Resolution never
// fails; a stale absolute path surfaces as a render-time error instead.
func resolveTemplate(app App, name string) location {
	if filepath.IsAbs(name) {
		return location{fsys: os.DirFS(name), dir: "."}
	}

	if name != "" {
		segment := path.Base(filepath.ToSlash(name))
		for _, root := range templateRoots(app) {
			candidate := path.Join(root.dir, segment)
			if dirExists(root.fsys, candidate) {
				return location{fsys: root.fsys, dir: candidate}
			}
		}
	}

	appLogger(app).Warn("email template not found, falling back to the empty template",
		slog.String("template", name))
	return location{fsys: builtinFS, dir: path.Join(builtinRoot, fallbackTemplate)}
}

// templateRoots returns the ordered candidate roots. The application and
// framework roots are optional; the built-in root is always present.
func templateRoots(app App) []location {
	roots := make([]location, 0, 3)
	if app != nil {
		if dir := app.TemplatesDir(); dir != "" {
			roots = append(roots, location{fsys: os.DirFS(dir), dir: "."})
		}
		if dir := app.FrameworkDir(); dir != "" {
			roots = append(roots, location{fsys: os.DirFS(dir), dir: "."})
		}
	}
	return append(roots, location{fsys: builtinFS, dir: builtinRoot})
}

func dirExists(fsys fs.FS, dir string) bool {
	info, err := fs.Stat(fsys, dir)
	return err == nil && info.IsDir()
}
