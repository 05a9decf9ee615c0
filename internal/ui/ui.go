// Package ui is the server-rendered web frontend: a thin set of pages over
// the API client, with every navigation passed through the route guard.
package ui

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bayuwidiasantoso/gudang/internal/api"
	"github.com/bayuwidiasantoso/gudang/internal/guard"
	"github.com/bayuwidiasantoso/gudang/internal/session"
)

// UI handles the web frontend.
type UI struct {
	api     *api.Client
	session *session.Store
	routes  guard.Table
	logger  *slog.Logger
	metrics *Metrics
	tmpl    *template.Template
}

// New creates the frontend over a shared API client and session store.
func New(apiClient *api.Client, sess *session.Store, metrics *Metrics, logger *slog.Logger) (*UI, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &UI{
		api:     apiClient,
		session: sess,
		routes:  guard.Routes(),
		logger:  logger.With("component", "ui"),
		metrics: metrics,
		tmpl:    tmpl,
	}, nil
}

// render writes a page template wrapped in the base layout.
func (ui *UI) render(w http.ResponseWriter, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["User"] = ui.session.User()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ui.tmpl.ExecuteTemplate(w, page, data); err != nil {
		ui.logger.Error("render failed", "page", page, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// renderError shows a page with an upstream error banner instead of failing
// the whole navigation.
func (ui *UI) renderError(w http.ResponseWriter, page string, err error, data map[string]any) {
	ui.logger.Error("upstream request failed", "page", page, "error", err)
	if data == nil {
		data = map[string]any{}
	}
	data["Error"] = err.Error()
	ui.render(w, page, data)
}
