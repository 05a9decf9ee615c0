package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show warehouse summary figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("dashboard"); err != nil {
				return err
			}

			resp, err := apiClient.DashboardSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("dashboard summary: %w", err)
			}

			out := cmd.OutOrStdout()
			s := resp.Data
			fmt.Fprintf(out, "Total barang:      %d\n", s.TotalBarang)
			fmt.Fprintf(out, "Total stok:        %d\n", s.TotalStok)
			fmt.Fprintf(out, "Masuk hari ini:    %d\n", s.TotalMasukHariIni)
			fmt.Fprintf(out, "Keluar hari ini:   %d\n", s.TotalKeluarHariIni)

			if len(s.TopBarang) > 0 {
				fmt.Fprintf(out, "\n%-15s  %-30s  %s\n", "SKU", "NAMA", "QTY")
				for _, b := range s.TopBarang {
					fmt.Fprintf(out, "%-15s  %-30s  %d\n", b.SKU, b.NamaBarang, b.TotalQty)
				}
			}

			series, err := apiClient.DashboardTimeSeries(cmd.Context(), days)
			if err != nil {
				return fmt.Errorf("dashboard time series: %w", err)
			}
			if len(series.Data.Labels) > 0 {
				fmt.Fprintf(out, "\n%-12s  %6s  %6s\n", "TANGGAL", "MASUK", "KELUAR")
				for i, label := range series.Data.Labels {
					masuk, keluar := 0, 0
					if i < len(series.Data.Masuk) {
						masuk = series.Data.Masuk[i]
					}
					if i < len(series.Data.Keluar) {
						keluar = series.Data.Keluar[i]
					}
					fmt.Fprintf(out, "%-12s  %6d  %6d\n", label, masuk, keluar)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Days of movement history to chart")
	return cmd
}
