package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

type staticCreds string

func (s staticCreds) Credential() string { return string(s) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestDo_SetsDefaultHeaders(t *testing.T) {
	var got http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"success":true,"message":"ok","data":[]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	if _, err := c.ListBarang(context.Background()); err != nil {
		t.Fatalf("ListBarang: %v", err)
	}

	if got.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", got.Get("Accept"))
	}
	if !strings.HasPrefix(got.Get("X-Request-ID"), "req_") {
		t.Errorf("X-Request-ID = %q", got.Get("X-Request-ID"))
	}
	if got.Get("Authorization") != "" {
		t.Errorf("unexpected Authorization header without credential: %q", got.Get("Authorization"))
	}
}

func TestDo_InjectsBearerToken(t *testing.T) {
	var auth, contentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	c.SetCredentialSource(staticCreds("tok123"))

	if _, err := c.CreateBarang(context.Background(), model.BarangInput{NamaBarang: "Palet", SKU: "PLT-1"}); err != nil {
		t.Fatalf("CreateBarang: %v", err)
	}

	if auth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want 'Bearer tok123'", auth)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
}

func TestDo_ValidationErrorCarriesParsedBody(t *testing.T) {
	body := `{"success":false,"message":"Validation failed","errors":{"sku":["The sku has already been taken."]}}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(body))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	_, err := c.CreateBarang(context.Background(), model.BarangInput{})
	if err == nil {
		t.Fatal("expected error for 422")
	}

	var reqErr *model.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *model.RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != 422 {
		t.Errorf("StatusCode = %d", reqErr.StatusCode)
	}
	if reqErr.Message != "Validation failed" {
		t.Errorf("Message = %q", reqErr.Message)
	}
	if string(reqErr.Body) != body {
		t.Errorf("Body not preserved verbatim: %s", reqErr.Body)
	}
	if len(reqErr.Errors["sku"]) != 1 {
		t.Errorf("field errors not parsed: %v", reqErr.Errors)
	}
}

func TestDo_UnparseableErrorBodyFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Server Error</html>"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	_, err := c.ListBarang(context.Background())

	var reqErr *model.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *model.RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d", reqErr.StatusCode)
	}
	if reqErr.Error() != "HTTP 500: request failed" {
		t.Errorf("fallback message = %q", reqErr.Error())
	}
}

func TestDo_EmptySuccessBodyIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	if err := c.Logout(context.Background()); err != nil {
		t.Errorf("empty body should decode as empty object, got: %v", err)
	}
}

func TestListTransaksi_BuildsQuery(t *testing.T) {
	var rawQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"message":"ok","data":[],"meta":{"current_page":1,"per_page":10,"total":0,"last_page":1}}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	_, err := c.ListTransaksi(context.Background(), model.TransaksiFilter{
		Jenis: model.JenisKeluar, Page: 3, PerPage: 10, SortBy: "qty", SortDir: "asc",
	})
	if err != nil {
		t.Fatalf("ListTransaksi: %v", err)
	}

	for _, want := range []string{"jenis=KELUAR", "page=3", "per_page=10", "sort_by=qty", "sort_dir=asc"} {
		if !strings.Contains(rawQuery, want) {
			t.Errorf("query %q missing %q", rawQuery, want)
		}
	}
}

func TestAutocompleteBarang_BlankQuerySkipsNetwork(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	items, err := c.AutocompleteBarang(context.Background(), "   ")
	if err != nil {
		t.Fatalf("AutocompleteBarang: %v", err)
	}
	if items != nil || called {
		t.Errorf("blank query should short-circuit: items=%v called=%v", items, called)
	}
}

func TestImportBarang_MultipartWithoutBearer(t *testing.T) {
	var auth, contentType, fileContent, fileName string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		var buf bytes.Buffer
		buf.ReadFrom(file)
		fileContent = buf.String()
		fileName = header.Filename

		w.Write([]byte(`{"success":true,"message":"imported"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	c.SetCredentialSource(staticCreds("tok123"))

	csv := "sku,nama_barang,stok\nPLT-1,Palet,10\n"
	resp, err := c.ImportBarang(context.Background(), "barang.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportBarang: %v", err)
	}

	if !resp.Success {
		t.Error("expected success envelope")
	}
	if auth != "" {
		t.Errorf("import must not inject bearer, got Authorization=%q", auth)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q", contentType)
	}
	if fileContent != csv || fileName != "barang.csv" {
		t.Errorf("file not forwarded intact: name=%q content=%q", fileName, fileContent)
	}
}

func TestImportTransaksi_SurfacesParsedFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"Baris 3 tidak valid"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, testLogger())
	_, err := c.ImportTransaksi(context.Background(), "transaksi.csv", strings.NewReader("x"))

	var reqErr *model.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *model.RequestError, got %T: %v", err, err)
	}
	if reqErr.Message != "Baris 3 tidak valid" {
		t.Errorf("Message = %q", reqErr.Message)
	}
}
