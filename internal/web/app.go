package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"

	contentSecurityPolicy = "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'"
)

var (
	//go:embed templates/index.html
	indexHTML string
	indexOnce sync.Once
	indexTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

type indexData struct {
	StylesPath string
	ScriptPath string
	Background string
}

// UI serves the embedded single page front end.
type UI struct {
	// Background pre-fills the background input; empty means #FFFFFF.
	Background string
}

// Register attaches the page and its assets to r.
func (u UI) Register(r *mux.Router) {
	r.HandleFunc("/", u.indexHandler).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(stylesPath, stylesHandler).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(scriptPath, scriptHandler).Methods(http.MethodGet, http.MethodHead)
}

func (u UI) indexHandler(w http.ResponseWriter, r *http.Request) {
	tmpl := loadTemplate()
	bg := u.Background
	if bg == "" {
		bg = "#FFFFFF"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
	if err := tmpl.Execute(w, indexData{StylesPath: stylesPath, ScriptPath: scriptPath, Background: bg}); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func stylesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write([]byte(stylesCSS))
}

func scriptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write([]byte(scriptJS))
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}

// Script returns the embedded ui.js source.
func Script() string { return scriptJS }
