package handlers

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shipfront/internal/logx"
	"shipfront/internal/view"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var funcs = template.FuncMap{
	"badge":    view.BadgeFor,
	"timeline": view.Timeline,
	// Optional timestamps arrive as pointers; both shapes render the same.
	"fmtTime": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return view.FormatTime(t)
		case *time.Time:
			if t != nil {
				return view.FormatTime(*t)
			}
		}
		return ""
	},
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
}

// pages maps a page name to its parsed template set (layout + page body).
var pages = func() map[string]*template.Template {
	names := []string{
		"login", "register", "dashboard", "create_shipment", "tracking",
		"profile", "driver_dashboard", "shipments", "shipment_detail", "error",
	}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(
			template.New("layout.gohtml").Funcs(funcs).ParseFS(
				templateFS,
				"templates/layout.gohtml",
				"templates/"+name+".gohtml",
			),
		)
	}
	return out
}()

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

// render writes a full page. A template failure is logged and answered with a
// plain 500; it never leaves a half-written view.
func render(logger logx.Logger, w http.ResponseWriter, r *http.Request, page string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		logger.Error("unknown page template",
			logx.String("req_id", reqID(r.Context())),
			logx.String("page", page),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.gohtml", data); err != nil {
		logger.Error("template render failed",
			logx.String("req_id", reqID(r.Context())),
			logx.String("page", page),
			logx.Err(err),
		)
	}
}

// renderError shows the shared error page with a user-displayable message.
func renderError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("page error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages["error"].ExecuteTemplate(w, "layout.gohtml", errorPage{Message: msg}); err != nil {
		logger.Error("error page render failed", logx.Err(err))
	}
}

type errorPage struct {
	Title   string
	Message string
}

func idFromURL(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", idStr)
	}
	return id, nil
}

func formString(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

func formFloat(r *http.Request, name string) (*float64, bool) {
	s := strings.TrimSpace(r.PostFormValue(name))
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func formBool(r *http.Request, name string) bool {
	switch strings.ToLower(r.PostFormValue(name)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
