package courier

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLocationFile(loc location, name string) (string, error) {
	raw, err := fs.ReadFile(loc.fsys, path.Join(loc.dir, name))
	return string(raw), err
}

// writeTemplateDir creates root/name with the given files and returns root.
func writeTemplateDir(t *testing.T, root, name string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for filename, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
	}
}

func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestResolveTemplate_AppRootWinsOverFramework(t *testing.T) {
	t.Parallel()

	appRoot := t.TempDir()
	frameworkRoot := t.TempDir()
	writeTemplateDir(t, appRoot, "welcome", map[string]string{"html.html": "app"})
	writeTemplateDir(t, frameworkRoot, "welcome", map[string]string{"html.html": "framework"})

	app := &AppContext{Templates: appRoot, Framework: frameworkRoot}
	loc := resolveTemplate(app, "welcome")

	raw, err := readLocationFile(loc, "html.html")
	require.NoError(t, err)
	require.Equal(t, "app", raw)
}

func TestResolveTemplate_FrameworkRootBeatsBuiltin(t *testing.T) {
	t.Parallel()

	frameworkRoot := t.TempDir()
	writeTemplateDir(t, frameworkRoot, "empty", map[string]string{"html.html": "framework"})

	app := &AppContext{Framework: frameworkRoot}
	loc := resolveTemplate(app, "empty")

	raw, err := readLocationFile(loc, "html.html")
	require.NoError(t, err)
	require.Equal(t, "framework", raw)
}

func TestResolveTemplate_StripsDirectoryComponents(t *testing.T) {
	t.Parallel()

	appRoot := t.TempDir()
	writeTemplateDir(t, appRoot, "welcome", map[string]string{"html.html": "app"})

	app := &AppContext{Templates: appRoot}
	loc := resolveTemplate(app, "../../sneaky/welcome")

	raw, err := readLocationFile(loc, "html.html")
	require.NoError(t, err)
	require.Equal(t, "app", raw)
}

func TestResolveTemplate_FallsBackWithOneWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	app := &AppContext{Log: captureLogger(&buf)}

	loc := resolveTemplate(app, "does-not-exist")

	raw, err := readLocationFile(loc, "html.html")
	require.NoError(t, err)
	require.Contains(t, raw, "<body>")
	require.Equal(t, 1, strings.Count(buf.String(), "falling back"))
	require.Contains(t, buf.String(), "does-not-exist")
}

func TestResolveTemplate_AbsolutePathUsedDirectly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTemplateDir(t, root, "standalone", map[string]string{"html.html": "absolute"})

	var buf bytes.Buffer
	app := &AppContext{Log: captureLogger(&buf)}
	loc := resolveTemplate(app, filepath.Join(root, "standalone"))

	raw, err := readLocationFile(loc, "html.html")
	require.NoError(t, err)
	require.Equal(t, "absolute", raw)
	require.Empty(t, buf.String(), "no warning for a direct path")
}

func TestResolveTemplate_BuiltinRootServesEmptyTemplate(t *testing.T) {
	t.Parallel()

	loc := resolveTemplate(nil, "empty")

	raw, err := readLocationFile(loc, "html.html")
	require.NoError(t, err)
	require.Contains(t, raw, "<body>")
}
