package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// startTestBackend serves a minimal inventory API and returns its URL.
func startTestBackend(t *testing.T) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "rahasia" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Email atau password salah",
			})
			return
		}
		role := model.RoleStaff
		if strings.HasPrefix(body.Email, "admin") {
			role = model.RoleAdmin
		}
		_ = json.NewEncoder(w).Encode(model.LoginResponse{
			Envelope: model.Envelope{Success: true},
			Token:    "tok-cli",
			User:     model.User{ID: 7, Name: "CLI Tester", Email: body.Email, Role: role},
		})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Envelope{Success: true})
	})
	mux.HandleFunc("GET /barang", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(model.BarangListResponse{
			Envelope: model.Envelope{Success: true},
			Data: []model.Barang{
				{ID: 1, NamaBarang: "Kardus Besar", SKU: "KRD-01", Stok: 40, StokMinimum: 10},
				{ID: 2, NamaBarang: "Lakban", SKU: "LKB-02", Stok: 3, StokMinimum: 5},
			},
		})
	})
	mux.HandleFunc("POST /transaksi", func(w http.ResponseWriter, r *http.Request) {
		var in model.TransaksiInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(model.TransaksiResponse{
			Envelope: model.Envelope{Success: true},
			Data: model.TransaksiBarang{
				ID: 99, BarangID: in.BarangID, Jenis: in.Jenis, Qty: in.Qty, Tanggal: "2024-05-01",
			},
		})
	})
	mux.HandleFunc("GET /laporan/stok-rendah", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.LowStockResponse{
			Envelope: model.Envelope{Success: true},
			Data: []model.Barang{
				{ID: 2, NamaBarang: "Lakban", SKU: "LKB-02", Stok: 3, StokMinimum: 5},
			},
		})
	})
	mux.HandleFunc("POST /imports/barang", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(model.ImportResponse{
			Envelope: model.Envelope{Success: true, Message: "2 baris diimpor"},
		})
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts.URL
}

// runCLI executes the root command against the given backend, keeping the
// session record in dataDir so consecutive invocations share it.
func runCLI(t *testing.T, serverURL, dataDir string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--server", serverURL, "--data-dir", dataDir}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestLoginCommand(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	output, err := runCLI(t, url, dir, "login", "--email", "admin@gudang.test", "--password", "rahasia")
	if err != nil {
		t.Fatalf("login error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "Signed in as CLI Tester (admin)") {
		t.Errorf("expected sign-in confirmation, got: %s", output)
	}

	// The session survives into a fresh invocation.
	output, err = runCLI(t, url, dir, "whoami")
	if err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if !strings.Contains(output, "admin@gudang.test") {
		t.Errorf("expected restored user in output, got: %s", output)
	}
}

func TestLoginCommand_BadPassword(t *testing.T) {
	url := startTestBackend(t)

	output, err := runCLI(t, url, t.TempDir(), "login", "--email", "admin@gudang.test", "--password", "salah")
	if err == nil {
		t.Fatalf("expected login failure, got output: %s", output)
	}
	if !strings.Contains(err.Error(), "Email atau password salah") {
		t.Errorf("expected backend message in error, got: %v", err)
	}
}

func TestWhoamiCommand_Anonymous(t *testing.T) {
	url := startTestBackend(t)

	output, err := runCLI(t, url, t.TempDir(), "whoami")
	if err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if !strings.Contains(output, "Not signed in.") {
		t.Errorf("expected anonymous message, got: %s", output)
	}
}

func TestBarangListCommand_RequiresLogin(t *testing.T) {
	url := startTestBackend(t)

	_, err := runCLI(t, url, t.TempDir(), "barang", "list")
	if err == nil {
		t.Fatal("expected error without login")
	}
	if !strings.Contains(err.Error(), "gudang login") {
		t.Errorf("expected login hint in error, got: %v", err)
	}
}

func TestBarangListCommand_Admin(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	if _, err := runCLI(t, url, dir, "login", "--email", "admin@gudang.test", "--password", "rahasia"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	output, err := runCLI(t, url, dir, "barang", "list")
	if err != nil {
		t.Fatalf("barang list error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "KRD-01") || !strings.Contains(output, "Lakban") {
		t.Errorf("expected item table in output, got: %s", output)
	}
}

func TestBarangListCommand_StaffDenied(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	if _, err := runCLI(t, url, dir, "login", "--email", "staff@gudang.test", "--password", "rahasia"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	_, err := runCLI(t, url, dir, "barang", "list")
	if err == nil {
		t.Fatal("expected role error for staff")
	}
	if !strings.Contains(err.Error(), "access denied") {
		t.Errorf("expected access denied error, got: %v", err)
	}
}

func TestTransaksiCreateCommand(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	if _, err := runCLI(t, url, dir, "login", "--email", "staff@gudang.test", "--password", "rahasia"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	output, err := runCLI(t, url, dir,
		"transaksi", "create", "--barang-id", "1", "--jenis", "MASUK", "--qty", "12")
	if err != nil {
		t.Fatalf("transaksi create error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "Recorded movement 99: MASUK 12") {
		t.Errorf("expected movement confirmation, got: %s", output)
	}
}

func TestTransaksiCreateCommand_InvalidJenis(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	if _, err := runCLI(t, url, dir, "login", "--email", "staff@gudang.test", "--password", "rahasia"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	_, err := runCLI(t, url, dir,
		"transaksi", "create", "--barang-id", "1", "--jenis", "SIDEWAYS", "--qty", "1")
	if err == nil || !strings.Contains(err.Error(), "invalid jenis") {
		t.Errorf("expected jenis validation error, got: %v", err)
	}
}

func TestLaporanCommand(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	if _, err := runCLI(t, url, dir, "login", "--email", "staff@gudang.test", "--password", "rahasia"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	output, err := runCLI(t, url, dir, "laporan")
	if err != nil {
		t.Fatalf("laporan error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "LKB-02") {
		t.Errorf("expected low-stock item in output, got: %s", output)
	}
}

func TestImportBarangCommand(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	if _, err := runCLI(t, url, dir, "login", "--email", "admin@gudang.test", "--password", "rahasia"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	csvPath := filepath.Join(t.TempDir(), "barang.csv")
	if err := os.WriteFile(csvPath, []byte("nama_barang,sku,stok\nKardus,KRD-01,10\n"), 0600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	output, err := runCLI(t, url, dir, "import", "barang", csvPath)
	if err != nil {
		t.Fatalf("import error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "2 baris diimpor") {
		t.Errorf("expected import summary, got: %s", output)
	}
}

func TestLogoutCommand(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	if _, err := runCLI(t, url, dir, "login", "--email", "admin@gudang.test", "--password", "rahasia"); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if _, err := runCLI(t, url, dir, "logout"); err != nil {
		t.Fatalf("logout error: %v", err)
	}

	output, err := runCLI(t, url, dir, "whoami")
	if err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if !strings.Contains(output, "Not signed in.") {
		t.Errorf("expected cleared session, got: %s", output)
	}
}

func TestSQLiteSessionBackend(t *testing.T) {
	url := startTestBackend(t)
	dir := t.TempDir()

	args := []string{"--session", "sqlite"}
	if _, err := runCLI(t, url, dir, append(args, "login", "--email", "admin@gudang.test", "--password", "rahasia")...); err != nil {
		t.Fatalf("login error: %v", err)
	}

	output, err := runCLI(t, url, dir, append(args, "whoami")...)
	if err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if !strings.Contains(output, "admin@gudang.test") {
		t.Errorf("expected sqlite-backed session to survive, got: %s", output)
	}
}
