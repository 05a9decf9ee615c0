package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bayuwidiasantoso/gudang/internal/guard"
	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// HandleLoginPage renders the login form. The guard has already redirected
// authenticated users away from here.
func (ui *UI) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	ui.render(w, "login", map[string]any{
		"Title":    "Login",
		"Error":    r.URL.Query().Get("error"),
		"Redirect": r.URL.Query().Get(guard.RedirectParam),
	})
}

// HandleLoginPost processes the login form.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	ui.metrics.LoginAttempts.Inc()

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Permintaan+tidak+valid", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	redirect := sanitizeRedirect(r.FormValue(guard.RedirectParam))

	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error=Email+dan+password+wajib+diisi", http.StatusSeeOther)
		return
	}

	if err := ui.session.Login(r.Context(), email, password); err != nil {
		ui.metrics.LoginFailures.Inc()
		ui.logger.Warn("login failed", "email", email, "error", err)

		q := url.Values{}
		q.Set("error", loginErrorMessage(err))
		if redirect != guard.LandingPath {
			q.Set(guard.RedirectParam, redirect)
		}
		http.Redirect(w, r, "/login?"+q.Encode(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// HandleLogout clears the session and returns to the login page.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	_ = ui.session.Logout(r.Context())
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}

// HandleDashboard renders the landing page.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Dashboard"}

	summary, err := ui.api.DashboardSummary(r.Context())
	if err != nil {
		ui.renderError(w, "dashboard", err, data)
		return
	}
	data["Summary"] = summary.Data

	if series, err := ui.api.DashboardTimeSeries(r.Context(), 7); err == nil {
		data["Series"] = series.Data
	}
	ui.render(w, "dashboard", data)
}

// HandleBarangList renders the item list with its create form.
func (ui *UI) HandleBarangList(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Barang"}

	resp, err := ui.api.ListBarang(r.Context())
	if err != nil {
		ui.renderError(w, "barang", err, data)
		return
	}
	data["Items"] = resp.Data
	ui.render(w, "barang", data)
}

// HandleBarangCreate processes the item create form.
func (ui *UI) HandleBarangCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/barang", http.StatusSeeOther)
		return
	}

	in := model.BarangInput{
		NamaBarang:  strings.TrimSpace(r.FormValue("nama_barang")),
		SKU:         strings.TrimSpace(r.FormValue("sku")),
		Stok:        formInt(r, "stok"),
		StokMinimum: formInt(r, "stok_minimum"),
	}
	if rak := strings.TrimSpace(r.FormValue("lokasi_rak")); rak != "" {
		in.LokasiRak = &rak
	}

	if _, err := ui.api.CreateBarang(r.Context(), in); err != nil {
		ui.logger.Warn("create barang failed", "sku", in.SKU, "error", err)
	}
	http.Redirect(w, r, "/barang", http.StatusSeeOther)
}

// HandleBarangDelete processes the item delete form.
func (ui *UI) HandleBarangDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err == nil {
		if err := ui.api.DeleteBarang(r.Context(), id); err != nil {
			ui.logger.Warn("delete barang failed", "id", id, "error", err)
		}
	}
	http.Redirect(w, r, "/barang", http.StatusSeeOther)
}

// HandleBarangDetail renders one item with its movement history.
func (ui *UI) HandleBarangDetail(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Detail Barang"}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	resp, err := ui.api.BarangDetail(r.Context(), id)
	if err != nil {
		ui.renderError(w, "barang_detail", err, data)
		return
	}
	data["Title"] = resp.Data.Barang.NamaBarang
	data["Detail"] = resp.Data
	ui.render(w, "barang_detail", data)
}

// HandleTransaksiList renders the movement list with filters.
func (ui *UI) HandleTransaksiList(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Transaksi"}

	q := r.URL.Query()
	filter := model.TransaksiFilter{
		Jenis:       model.Jenis(q.Get("jenis")),
		TanggalFrom: q.Get("tanggal_from"),
		TanggalTo:   q.Get("tanggal_to"),
		BarangID:    queryInt(q, "barang_id"),
		Page:        queryInt(q, "page"),
		PerPage:     queryInt(q, "per_page"),
		SortBy:      q.Get("sort_by"),
		SortDir:     q.Get("sort_dir"),
	}

	resp, err := ui.api.ListTransaksi(r.Context(), filter)
	if err != nil {
		ui.renderError(w, "transaksi", err, data)
		return
	}
	data["Items"] = resp.Data
	data["Meta"] = resp.Meta
	ui.render(w, "transaksi", data)
}

// HandleTransaksiCreate processes the movement create form.
func (ui *UI) HandleTransaksiCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/transaksi", http.StatusSeeOther)
		return
	}

	in := model.TransaksiInput{
		BarangID:   formInt(r, "barang_id"),
		Jenis:      model.Jenis(r.FormValue("jenis")),
		Qty:        formInt(r, "qty"),
		Tanggal:    r.FormValue("tanggal"),
		Keterangan: strings.TrimSpace(r.FormValue("keterangan")),
	}

	if _, err := ui.api.CreateTransaksi(r.Context(), in); err != nil {
		ui.logger.Warn("create transaksi failed", "barang_id", in.BarangID, "error", err)
	}
	http.Redirect(w, r, "/transaksi", http.StatusSeeOther)
}

// HandleLaporan renders the low-stock report.
func (ui *UI) HandleLaporan(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Laporan Stok Rendah"}

	q := r.URL.Query()
	params := model.LowStockParams{
		Page:    queryInt(q, "page"),
		PerPage: queryInt(q, "per_page"),
	}
	if v := q.Get("threshold"); v != "" {
		if threshold, err := strconv.Atoi(v); err == nil {
			params.Threshold = &threshold
			data["Threshold"] = threshold
		}
	}

	resp, err := ui.api.LowStock(r.Context(), params)
	if err != nil {
		ui.renderError(w, "laporan", err, data)
		return
	}
	data["Items"] = resp.Data
	data["Meta"] = resp.Meta
	ui.render(w, "laporan", data)
}

// HandleLogs renders the activity log list.
func (ui *UI) HandleLogs(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Activity Logs"}

	q := r.URL.Query()
	filter := model.ActivityLogFilter{
		Module:  q.Get("module"),
		Action:  q.Get("action"),
		Search:  q.Get("search"),
		Page:    queryInt(q, "page"),
		PerPage: queryInt(q, "per_page"),
	}
	data["Module"], data["Action"], data["Search"] = filter.Module, filter.Action, filter.Search

	resp, err := ui.api.ActivityLogs(r.Context(), filter)
	if err != nil {
		ui.renderError(w, "logs", err, data)
		return
	}
	data["Items"] = resp.Data
	data["Meta"] = resp.Meta
	ui.render(w, "logs", data)
}

// sanitizeRedirect keeps post-login redirects on this site. Anything that is
// not a local absolute path falls back to the landing page.
func sanitizeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return guard.LandingPath
	}
	return target
}

// loginErrorMessage maps backend failures to a user-facing message.
func loginErrorMessage(err error) string {
	var reqErr *model.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return "Login gagal, coba lagi"
}

func formInt(r *http.Request, field string) int {
	n, _ := strconv.Atoi(r.FormValue(field))
	return n
}

func queryInt(q url.Values, field string) int {
	n, _ := strconv.Atoi(q.Get(field))
	return n
}
