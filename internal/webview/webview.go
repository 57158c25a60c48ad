// Package webview renders a result set as a minimal HTML document and
// hands it to an externally configured browser command.
//
// The document is written to a fixed path under the system temp directory
// and reused on every invocation; the browser is launched detached so the
// CLI can exit immediately.
package webview

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mariotti/bookmark/internal/query"
)

// ErrNoBrowser is returned when no browser command is configured.
var ErrNoBrowser = errors.New("no browser configured (set config key \"browser\" or $BROWSER)")

// FileName is the fixed name of the rendered document under os.TempDir().
const FileName = "bookmark-view.html"

var page = template.Must(template.New("view").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<ol>
{{- range .Entries}}
<li><a href="{{.URL}}">{{.URL}}</a>{{if .Tags}} &mdash; {{join .Tags " "}}{{end}}</li>
{{- end}}
</ol>
</body>
</html>
`))

// Render writes the HTML document for a result set to w. The title is the
// joined tag filter the results were produced from, or "bookmarks" when no
// filter was applied.
func Render(w io.Writer, tags []string, entries []query.Entry) error {
	title := strings.Join(tags, " ")
	if title == "" {
		title = "bookmarks"
	}
	return page.Execute(w, struct {
		Title   string
		Entries []query.Entry
	}{Title: title, Entries: entries})
}

// Path returns the fixed temporary path the document is written to.
func Path() string {
	return filepath.Join(os.TempDir(), FileName)
}

// Open renders the result set to the fixed temp path and launches the
// browser command on it. The browser process is not waited on.
func Open(browser string, tags []string, entries []query.Entry) error {
	if browser == "" {
		return ErrNoBrowser
	}

	f, err := os.Create(Path())
	if err != nil {
		return fmt.Errorf("writing %s: %w", Path(), err)
	}
	renderErr := Render(f, tags, entries)
	closeErr := f.Close()
	if renderErr != nil {
		return renderErr
	}
	if closeErr != nil {
		return closeErr
	}

	cmd := exec.Command(browser, Path())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching browser %q: %w", browser, err)
	}
	// Detach: the page stays open after the CLI exits.
	return cmd.Process.Release()
}
