package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

func newLaporanCmd() *cobra.Command {
	var threshold, page, perPage int

	cmd := &cobra.Command{
		Use:   "laporan",
		Short: "Show the low-stock report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("laporan"); err != nil {
				return err
			}

			params := model.LowStockParams{Page: page, PerPage: perPage}
			if cmd.Flags().Changed("threshold") {
				params.Threshold = &threshold
			}

			resp, err := apiClient.LowStock(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("low-stock report: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(resp.Data) == 0 {
				fmt.Fprintln(out, "No items below threshold.")
				return nil
			}

			fmt.Fprintf(out, "%-15s  %-30s  %6s  %6s\n", "SKU", "NAMA", "STOK", "MIN")
			for _, b := range resp.Data {
				fmt.Fprintf(out, "%-15s  %-30s  %6d  %6d\n", b.SKU, b.NamaBarang, b.Stok, b.StokMinimum)
			}

			meta := resp.Meta
			if meta.Threshold != nil {
				fmt.Fprintf(out, "\nFixed threshold: %d\n", *meta.Threshold)
			}
			if meta.LastPage > 1 {
				fmt.Fprintf(out, "Page %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "Fixed threshold instead of per-item stok_minimum")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Items per page")
	return cmd
}
