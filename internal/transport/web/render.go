package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageFiles = []string{
	"home.html",
	"catalog.html",
	"book.html",
	"categories.html",
	"about.html",
	"admin_login.html",
	"admin_dashboard.html",
	"admin_books.html",
	"admin_book_form.html",
	"admin_categories.html",
	"admin_analytics.html",
	"admin_profile.html",
	"not_found.html",
	"error.html",
}

type renderer struct {
	pages map[string]*template.Template
}

// newRenderer parses every page against the shared layout. Each page file
// defines the "content" block the layout renders.
func newRenderer(cfg *config.Config) (*renderer, error) {
	funcs := template.FuncMap{
		"imageUrl": func(image string) string {
			if image == "" || strings.HasPrefix(image, "http") {
				return image
			}
			if strings.HasPrefix(image, "/uploads") {
				return cfg.LibraryApi.BaseUrl + image
			}
			return image
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &renderer{pages: pages}, nil
}

func (rd *renderer) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl, ok := rd.pages[page]
	if !ok {
		slog.Error("unknown template", slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())), slog.String("page", page))
		http.Error(w, internalErrMsg, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		slog.Error("template execution failed", slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())), slog.String("page", page), slog.String("err", err.Error()))
	}
}
