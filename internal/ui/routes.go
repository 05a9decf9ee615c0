package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the frontend router. Every page goes through the navigation
// guard; /healthz and /metrics sit outside the route table and are always
// public.
func (ui *UI) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(ui.Guard)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", ui.metrics.Handler())

	r.Get("/login", ui.HandleLoginPage)
	r.Post("/login", ui.HandleLoginPost)
	r.Post("/logout", ui.HandleLogout)

	r.Get("/", ui.HandleDashboard)

	r.Get("/barang", ui.HandleBarangList)
	r.Post("/barang", ui.HandleBarangCreate)
	r.Post("/barang/{id}/delete", ui.HandleBarangDelete)
	r.Get("/barang/{id}", ui.HandleBarangDetail)

	r.Get("/transaksi", ui.HandleTransaksiList)
	r.Post("/transaksi", ui.HandleTransaksiCreate)

	r.Get("/laporan", ui.HandleLaporan)
	r.Get("/logs", ui.HandleLogs)

	return r
}
