package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"hasError": func(errs map[string]string, field string) bool {
		_, ok := errs[field]
		return ok
	},
	"scores": func() []int {
		return []int{1, 2, 3, 4, 5}
	},
}

// Templates parses every page template together with the shared layout.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

// Mount installs the templates and the static assets on engine.
func Mount(engine *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	engine.StaticFS("/static", http.FS(static))
	return nil
}
