package model

// Barang is an inventory item (SKU, stock level, reorder threshold, shelf
// location). Timestamps are passed through as the backend formats them.
type Barang struct {
	ID          int     `json:"id"`
	NamaBarang  string  `json:"nama_barang"`
	SKU         string  `json:"sku"`
	Stok        int     `json:"stok"`
	StokMinimum int     `json:"stok_minimum"`
	LokasiRak   *string `json:"lokasi_rak"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// LowStock reports whether the item is at or below its reorder threshold.
func (b *Barang) LowStock() bool {
	return b.Stok <= b.StokMinimum
}

// BarangInput is the payload for creating or updating an item.
type BarangInput struct {
	NamaBarang  string  `json:"nama_barang"`
	SKU         string  `json:"sku"`
	Stok        int     `json:"stok"`
	StokMinimum int     `json:"stok_minimum,omitempty"`
	LokasiRak   *string `json:"lokasi_rak,omitempty"`
}

// BarangRef is the compact item reference embedded in transaction records.
type BarangRef struct {
	ID         int     `json:"id"`
	NamaBarang string  `json:"nama_barang"`
	SKU        string  `json:"sku"`
	LokasiRak  *string `json:"lokasi_rak"`
}

// BarangDetail is the item detail payload: the item plus its movement history.
type BarangDetail struct {
	Barang  Barang            `json:"barang"`
	History []TransaksiBarang `json:"history"`
}
