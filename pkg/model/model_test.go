package model

import (
	"encoding/json"
	"testing"
)

func TestUserRolePredicates(t *testing.T) {
	admin := &User{ID: 1, Name: "Budi", Email: "budi@x.com", Role: RoleAdmin}
	staff := &User{ID: 2, Name: "Sari", Email: "sari@x.com", Role: RoleStaff}

	if !admin.IsAdmin() || admin.IsStaff() {
		t.Errorf("admin predicates wrong: IsAdmin=%v IsStaff=%v", admin.IsAdmin(), admin.IsStaff())
	}
	if !staff.IsStaff() || staff.IsAdmin() {
		t.Errorf("staff predicates wrong: IsAdmin=%v IsStaff=%v", staff.IsAdmin(), staff.IsStaff())
	}
}

func TestBarangLowStock(t *testing.T) {
	tests := []struct {
		stok, min int
		want      bool
	}{
		{0, 5, true},
		{5, 5, true},
		{6, 5, false},
		{100, 10, false},
	}
	for _, tt := range tests {
		b := &Barang{Stok: tt.stok, StokMinimum: tt.min}
		if got := b.LowStock(); got != tt.want {
			t.Errorf("LowStock(stok=%d, min=%d) = %v, want %v", tt.stok, tt.min, got, tt.want)
		}
	}
}

func TestTransaksiFilterQuery(t *testing.T) {
	f := TransaksiFilter{
		Jenis:       JenisMasuk,
		TanggalFrom: "2026-01-01",
		TanggalTo:   "2026-01-31",
		BarangID:    7,
		Page:        2,
		PerPage:     25,
		SortBy:      "tanggal",
		SortDir:     "desc",
	}
	q := f.Query()

	want := map[string]string{
		"jenis":        "MASUK",
		"tanggal_from": "2026-01-01",
		"tanggal_to":   "2026-01-31",
		"barang_id":    "7",
		"page":         "2",
		"per_page":     "25",
		"sort_by":      "tanggal",
		"sort_dir":     "desc",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("query[%s] = %q, want %q", k, got, v)
		}
	}
}

func TestTransaksiFilterQuery_ZeroValuesOmitted(t *testing.T) {
	q := TransaksiFilter{}.Query()
	if len(q) != 0 {
		t.Errorf("empty filter should encode no parameters, got %v", q)
	}
}

func TestLowStockParamsQuery(t *testing.T) {
	threshold := 10
	q := LowStockParams{Threshold: &threshold, Page: 1, PerPage: 50}.Query()
	if q.Get("threshold") != "10" || q.Get("page") != "1" || q.Get("per_page") != "50" {
		t.Errorf("unexpected query: %v", q)
	}

	q = LowStockParams{}.Query()
	if q.Has("threshold") {
		t.Error("nil threshold should be omitted")
	}
}

func TestLoginResponseDecode(t *testing.T) {
	body := `{"success":true,"message":"ok","token":"tok123","user":{"id":1,"name":"Budi","email":"a@x.com","role":"admin"}}`

	var resp LoginResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Token != "tok123" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.User.Role != RoleAdmin || resp.User.ID != 1 {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestRequestErrorMessage(t *testing.T) {
	err := &RequestError{StatusCode: 422, Message: "Validation failed"}
	if err.Error() != "HTTP 422: Validation failed" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !err.IsValidation() {
		t.Error("expected IsValidation for 422")
	}

	generic := &RequestError{StatusCode: 500}
	if generic.Error() != "HTTP 500: request failed" {
		t.Errorf("unexpected fallback message: %s", generic.Error())
	}
}
