package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

func newTransaksiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaksi",
		Short: "Record and list stock movements",
	}
	cmd.AddCommand(newTransaksiListCmd(), newTransaksiCreateCmd())
	return cmd
}

func newTransaksiListCmd() *cobra.Command {
	var filter model.TransaksiFilter
	var jenis string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stock movements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("transaksi"); err != nil {
				return err
			}
			filter.Jenis = model.Jenis(jenis)

			resp, err := apiClient.ListTransaksi(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("list transaksi: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(resp.Data) == 0 {
				fmt.Fprintln(out, "No movements found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-10s  %-8s  %6s  %-20s  %s\n", "ID", "TANGGAL", "JENIS", "QTY", "BARANG", "KETERANGAN")
			for _, tx := range resp.Data {
				name := "-"
				if tx.Barang != nil {
					name = tx.Barang.NamaBarang
				}
				fmt.Fprintf(out, "%-5d  %-10s  %-8s  %6d  %-20s  %s\n",
					tx.ID, tx.Tanggal, tx.Jenis, tx.Qty, name, strOr(tx.Keterangan))
			}

			meta := resp.Meta
			if meta.LastPage > 1 {
				fmt.Fprintf(out, "\nPage %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jenis, "jenis", "", "Filter by direction (MASUK or KELUAR)")
	cmd.Flags().StringVar(&filter.TanggalFrom, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.TanggalTo, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&filter.BarangID, "barang-id", 0, "Filter by item id")
	cmd.Flags().IntVar(&filter.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&filter.PerPage, "per-page", 0, "Items per page")
	cmd.Flags().StringVar(&filter.SortBy, "sort-by", "", "Sort column (tanggal, qty, jenis)")
	cmd.Flags().StringVar(&filter.SortDir, "sort-dir", "", "Sort direction (asc, desc)")
	return cmd
}

func newTransaksiCreateCmd() *cobra.Command {
	var in model.TransaksiInput
	var jenis string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a stock movement",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("transaksi"); err != nil {
				return err
			}

			in.Jenis = model.Jenis(jenis)
			if in.Jenis != model.JenisMasuk && in.Jenis != model.JenisKeluar {
				return fmt.Errorf("invalid jenis %q (want MASUK or KELUAR)", jenis)
			}

			resp, err := apiClient.CreateTransaksi(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create transaksi: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded movement %d: %s %d\n", resp.Data.ID, resp.Data.Jenis, resp.Data.Qty)
			return nil
		},
	}

	cmd.Flags().IntVar(&in.BarangID, "barang-id", 0, "Item id")
	cmd.Flags().StringVar(&jenis, "jenis", "", "Direction (MASUK or KELUAR)")
	cmd.Flags().IntVar(&in.Qty, "qty", 0, "Quantity moved")
	cmd.Flags().StringVar(&in.Tanggal, "tanggal", "", "Movement date (YYYY-MM-DD, defaults to today server-side)")
	cmd.Flags().StringVar(&in.Keterangan, "keterangan", "", "Free-text note")
	_ = cmd.MarkFlagRequired("barang-id")
	_ = cmd.MarkFlagRequired("jenis")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}
