package ui

import "html/template"

var templateFuncs = template.FuncMap{
	"str": func(s *string) string {
		if s == nil {
			return "-"
		}
		return *s
	},
}

// parseTemplates builds the page template set. The markup is intentionally
// bare: functional tables and forms, no styling beyond structure.
func parseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(templateFuncs).Parse(pageTemplates)
}

const pageTemplates = `
{{define "head"}}
<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>{{.Title}} - Gudang</title></head>
<body>
{{if .User}}
<nav>
  <a href="/">Dashboard</a>
  {{if .User.IsAdmin}}<a href="/barang">Barang</a>{{end}}
  <a href="/transaksi">Transaksi</a>
  <a href="/laporan">Laporan</a>
  {{if .User.IsAdmin}}<a href="/logs">Logs</a>{{end}}
  <form method="post" action="/logout" style="display:inline">
    <button type="submit">Logout ({{.User.Name}})</button>
  </form>
</nav>
{{end}}
{{if .Error}}<p role="alert">{{.Error}}</p>{{end}}
<h1>{{.Title}}</h1>
{{end}}

{{define "foot"}}</body></html>{{end}}

{{define "login"}}
{{template "head" .}}
<form method="post" action="/login">
  <input type="hidden" name="redirect" value="{{.Redirect}}">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Masuk</button>
</form>
{{template "foot" .}}
{{end}}

{{define "dashboard"}}
{{template "head" .}}
{{with .Summary}}
<ul>
  <li>Total barang: {{.TotalBarang}}</li>
  <li>Total stok: {{.TotalStok}}</li>
  <li>Masuk hari ini: {{.TotalMasukHariIni}}</li>
  <li>Keluar hari ini: {{.TotalKeluarHariIni}}</li>
</ul>
<h2>Barang teraktif</h2>
<table border="1">
  <tr><th>SKU</th><th>Nama</th><th>Total qty</th></tr>
  {{range .TopBarang}}
  <tr><td>{{.SKU}}</td><td><a href="/barang/{{.BarangID}}">{{.NamaBarang}}</a></td><td>{{.TotalQty}}</td></tr>
  {{end}}
</table>
{{end}}
{{with .Series}}
<h2>Pergerakan {{len .Labels}} hari</h2>
<table border="1">
  <tr><th>Tanggal</th><th>Masuk</th><th>Keluar</th></tr>
  {{range $i, $label := .Labels}}
  <tr><td>{{$label}}</td><td>{{index $.Series.Masuk $i}}</td><td>{{index $.Series.Keluar $i}}</td></tr>
  {{end}}
</table>
{{end}}
{{template "foot" .}}
{{end}}

{{define "barang"}}
{{template "head" .}}
<table border="1">
  <tr><th>SKU</th><th>Nama</th><th>Stok</th><th>Minimum</th><th>Rak</th><th></th></tr>
  {{range .Items}}
  <tr>
    <td>{{.SKU}}</td>
    <td><a href="/barang/{{.ID}}">{{.NamaBarang}}</a></td>
    <td>{{.Stok}}</td>
    <td>{{.StokMinimum}}</td>
    <td>{{str .LokasiRak}}</td>
    <td><form method="post" action="/barang/{{.ID}}/delete"><button type="submit">Hapus</button></form></td>
  </tr>
  {{end}}
</table>
<h2>Tambah barang</h2>
<form method="post" action="/barang">
  <label>Nama <input name="nama_barang" required></label>
  <label>SKU <input name="sku" required></label>
  <label>Stok <input type="number" name="stok" value="0"></label>
  <label>Stok minimum <input type="number" name="stok_minimum" value="0"></label>
  <label>Lokasi rak <input name="lokasi_rak"></label>
  <button type="submit">Simpan</button>
</form>
{{template "foot" .}}
{{end}}

{{define "barang_detail"}}
{{template "head" .}}
{{with .Detail}}
<dl>
  <dt>SKU</dt><dd>{{.Barang.SKU}}</dd>
  <dt>Stok</dt><dd>{{.Barang.Stok}}</dd>
  <dt>Stok minimum</dt><dd>{{.Barang.StokMinimum}}</dd>
  <dt>Lokasi rak</dt><dd>{{str .Barang.LokasiRak}}</dd>
</dl>
<h2>Riwayat</h2>
<table border="1">
  <tr><th>Tanggal</th><th>Jenis</th><th>Qty</th><th>Keterangan</th></tr>
  {{range .History}}
  <tr><td>{{.Tanggal}}</td><td>{{.Jenis}}</td><td>{{.Qty}}</td><td>{{str .Keterangan}}</td></tr>
  {{end}}
</table>
{{end}}
{{template "foot" .}}
{{end}}

{{define "transaksi"}}
{{template "head" .}}
<form method="get" action="/transaksi">
  <select name="jenis">
    <option value="">Semua</option>
    <option value="MASUK">MASUK</option>
    <option value="KELUAR">KELUAR</option>
  </select>
  <input type="date" name="tanggal_from">
  <input type="date" name="tanggal_to">
  <button type="submit">Filter</button>
</form>
<table border="1">
  <tr><th>Tanggal</th><th>Barang</th><th>Jenis</th><th>Qty</th><th>Keterangan</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.Tanggal}}</td>
    <td>{{if .Barang}}{{.Barang.NamaBarang}}{{else}}#{{.BarangID}}{{end}}</td>
    <td>{{.Jenis}}</td>
    <td>{{.Qty}}</td>
    <td>{{str .Keterangan}}</td>
  </tr>
  {{end}}
</table>
{{with .Meta}}<p>Halaman {{.CurrentPage}} / {{.LastPage}} ({{.Total}} transaksi)</p>{{end}}
<h2>Catat transaksi</h2>
<form method="post" action="/transaksi">
  <label>Barang ID <input type="number" name="barang_id" required></label>
  <select name="jenis"><option>MASUK</option><option>KELUAR</option></select>
  <label>Qty <input type="number" name="qty" required></label>
  <label>Tanggal <input type="date" name="tanggal"></label>
  <label>Keterangan <input name="keterangan"></label>
  <button type="submit">Simpan</button>
</form>
{{template "foot" .}}
{{end}}

{{define "laporan"}}
{{template "head" .}}
<form method="get" action="/laporan">
  <label>Threshold <input type="number" name="threshold" value="{{with .Threshold}}{{.}}{{end}}"></label>
  <button type="submit">Terapkan</button>
</form>
<table border="1">
  <tr><th>SKU</th><th>Nama</th><th>Stok</th><th>Minimum</th><th>Rak</th></tr>
  {{range .Items}}
  <tr><td>{{.SKU}}</td><td>{{.NamaBarang}}</td><td>{{.Stok}}</td><td>{{.StokMinimum}}</td><td>{{str .LokasiRak}}</td></tr>
  {{end}}
</table>
{{with .Meta}}<p>Halaman {{.CurrentPage}} / {{.LastPage}} ({{.Total}} barang)</p>{{end}}
{{template "foot" .}}
{{end}}

{{define "logs"}}
{{template "head" .}}
<form method="get" action="/logs">
  <input name="module" placeholder="module" value="{{.Module}}">
  <input name="action" placeholder="action" value="{{.Action}}">
  <input name="search" placeholder="cari" value="{{.Search}}">
  <button type="submit">Filter</button>
</form>
<table border="1">
  <tr><th>Waktu</th><th>Module</th><th>Action</th><th>Deskripsi</th></tr>
  {{range .Items}}
  <tr><td>{{.CreatedAt}}</td><td>{{.Module}}</td><td>{{.Action}}</td><td>{{str .Description}}</td></tr>
  {{end}}
</table>
{{with .Meta}}<p>Halaman {{.CurrentPage}} / {{.LastPage}} ({{.Total}} entri)</p>{{end}}
{{template "foot" .}}
{{end}}
`
