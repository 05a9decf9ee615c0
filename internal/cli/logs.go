package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

func newLogsCmd() *cobra.Command {
	var filter model.ActivityLogFilter

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List backend activity logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("logs"); err != nil {
				return err
			}

			resp, err := apiClient.ActivityLogs(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("activity logs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(resp.Data) == 0 {
				fmt.Fprintln(out, "No log entries found.")
				return nil
			}

			fmt.Fprintf(out, "%-20s  %-10s  %-10s  %s\n", "WAKTU", "MODULE", "ACTION", "DESCRIPTION")
			for _, entry := range resp.Data {
				fmt.Fprintf(out, "%-20s  %-10s  %-10s  %s\n",
					entry.CreatedAt, entry.Module, entry.Action, strOr(entry.Description))
			}

			meta := resp.Meta
			if meta.LastPage > 1 {
				fmt.Fprintf(out, "\nPage %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Module, "module", "", "Filter by module (barang, transaksi, ...)")
	cmd.Flags().StringVar(&filter.Action, "action", "", "Filter by action (create, update, delete, ...)")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Full-text search in descriptions")
	cmd.Flags().IntVar(&filter.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&filter.PerPage, "per-page", 0, "Items per page")
	return cmd
}
