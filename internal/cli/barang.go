package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

func newBarangCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barang",
		Short: "Manage warehouse items",
	}
	cmd.AddCommand(
		newBarangListCmd(),
		newBarangGetCmd(),
		newBarangCreateCmd(),
		newBarangUpdateCmd(),
		newBarangDeleteCmd(),
		newBarangSearchCmd(),
	)
	return cmd
}

func newBarangListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("barang"); err != nil {
				return err
			}

			resp, err := apiClient.ListBarang(cmd.Context())
			if err != nil {
				return fmt.Errorf("list barang: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(resp.Data) == 0 {
				fmt.Fprintln(out, "No items found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-30s  %-15s  %6s  %6s  %-10s\n", "ID", "NAMA", "SKU", "STOK", "MIN", "RAK")
			for _, b := range resp.Data {
				fmt.Fprintf(out, "%-5d  %-30s  %-15s  %6d  %6d  %-10s\n",
					b.ID, b.NamaBarang, b.SKU, b.Stok, b.StokMinimum, strOr(b.LokasiRak))
			}
			return nil
		},
	}
}

func newBarangGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item with its movement history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("barang-detail"); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			resp, err := apiClient.BarangDetail(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get barang: %w", err)
			}

			out := cmd.OutOrStdout()
			b := resp.Data.Barang
			fmt.Fprintf(out, "ID:          %d\n", b.ID)
			fmt.Fprintf(out, "Nama:        %s\n", b.NamaBarang)
			fmt.Fprintf(out, "SKU:         %s\n", b.SKU)
			fmt.Fprintf(out, "Stok:        %d (minimum %d)\n", b.Stok, b.StokMinimum)
			fmt.Fprintf(out, "Lokasi rak:  %s\n", strOr(b.LokasiRak))

			if len(resp.Data.History) > 0 {
				fmt.Fprintf(out, "\n%-10s  %-8s  %6s  %s\n", "TANGGAL", "JENIS", "QTY", "KETERANGAN")
				for _, tx := range resp.Data.History {
					fmt.Fprintf(out, "%-10s  %-8s  %6d  %s\n", tx.Tanggal, tx.Jenis, tx.Qty, strOr(tx.Keterangan))
				}
			}
			return nil
		},
	}
}

func newBarangCreateCmd() *cobra.Command {
	var in model.BarangInput
	var rak string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("barang"); err != nil {
				return err
			}
			if rak != "" {
				in.LokasiRak = &rak
			}

			resp, err := apiClient.CreateBarang(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create barang: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created item %d (%s)\n", resp.Data.ID, resp.Data.SKU)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.NamaBarang, "nama", "", "Item name")
	cmd.Flags().StringVar(&in.SKU, "sku", "", "Stock keeping unit")
	cmd.Flags().IntVar(&in.Stok, "stok", 0, "Initial stock")
	cmd.Flags().IntVar(&in.StokMinimum, "stok-minimum", 0, "Low-stock threshold")
	cmd.Flags().StringVar(&rak, "rak", "", "Shelf location")
	_ = cmd.MarkFlagRequired("nama")
	_ = cmd.MarkFlagRequired("sku")
	return cmd
}

func newBarangUpdateCmd() *cobra.Command {
	var in model.BarangInput
	var rak string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("barang"); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			if rak != "" {
				in.LokasiRak = &rak
			}

			resp, err := apiClient.UpdateBarang(cmd.Context(), id, in)
			if err != nil {
				return fmt.Errorf("update barang: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated item %d (%s)\n", resp.Data.ID, resp.Data.SKU)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.NamaBarang, "nama", "", "Item name")
	cmd.Flags().StringVar(&in.SKU, "sku", "", "Stock keeping unit")
	cmd.Flags().IntVar(&in.Stok, "stok", 0, "Stock count")
	cmd.Flags().IntVar(&in.StokMinimum, "stok-minimum", 0, "Low-stock threshold")
	cmd.Flags().StringVar(&rak, "rak", "", "Shelf location")
	return cmd
}

func newBarangDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("barang"); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			if err := apiClient.DeleteBarang(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete barang: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
			return nil
		},
	}
}

func newBarangSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Autocomplete items by name or SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute("transaksi"); err != nil {
				return err
			}

			items, err := apiClient.AutocompleteBarang(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("search barang: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No matches.")
				return nil
			}
			for _, b := range items {
				fmt.Fprintf(out, "%d\t%s\t%s\tstok=%d\n", b.ID, b.SKU, b.NamaBarang, b.Stok)
			}
			return nil
		},
	}
}

// strOr renders an optional string field, "-" when unset.
func strOr(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
