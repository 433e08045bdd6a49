package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
)

//go:embed html/*.html
var files embed.FS

const layoutFile = "html/layout.html"

// URLFunc reverses a named route; pairs are alternating variable names and values.
type URLFunc func(name string, pairs ...string) string

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page view.Page)
	Has(name string) bool
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer(urls URLFunc) (Renderer, error) {
	funcs := template.FuncMap{
		"url":  urls,
		"date": formatDate,
		"dict": dict,
	}
	pageFiles, err := fs.Glob(files, "html/*.html")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(files, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &rendererImpl{pages: pages}, nil
}

type rendererImpl struct {
	pages map[string]*template.Template
}

func (r rendererImpl) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

func (r rendererImpl) Render(w http.ResponseWriter, status int, name string, page view.Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		log.Errorf("Template %s not found", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		log.Errorf("Failed to render template %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Errorf("failed to write http response: %v", err)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func dict(values ...interface{}) (map[string]interface{}, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict expects an even number of arguments")
	}
	result := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		result[key] = values[i+1]
	}
	return result, nil
}
