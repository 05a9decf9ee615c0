package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-import items or movements from CSV",
	}
	cmd.AddCommand(newImportBarangCmd(), newImportTransaksiCmd())
	return cmd
}

func newImportBarangCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "barang <file.csv>",
		Short: "Import items from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("barang"); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			resp, err := apiClient.ImportBarang(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return fmt.Errorf("import barang: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Import finished: %s\n", resp.Message)
			return nil
		},
	}
}

func newImportTransaksiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transaksi <file.csv>",
		Short: "Import stock movements from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("transaksi"); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			resp, err := apiClient.ImportTransaksi(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return fmt.Errorf("import transaksi: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Import finished: %s\n", resp.Message)
			return nil
		},
	}
}
