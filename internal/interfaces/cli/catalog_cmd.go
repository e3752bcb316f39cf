package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invex/internal/application/dto"
)

func (a *app) warehousesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "warehouses",
		Short: "Lista los almacenes conocidos (derivados de los stocks)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.ProductUC.ListWarehouses(cmd.Context())
			if err != nil {
				return err
			}
			renderWarehouses(a.Out, list)
			return nil
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	var (
		form        dto.CreateProductForm
		warehouseID string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Da de alta un producto con su stock inicial en un almacén",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session()
			if err != nil {
				return err
			}
			if warehouseID != "" {
				wh, err := a.ProductUC.FindWarehouse(cmd.Context(), warehouseID)
				if err != nil {
					return err
				}
				form.Warehouse = wh
			}
			created, err := a.ProductUC.Create(cmd.Context(), session, form)
			if err != nil {
				return err
			}
			a.printf("Producto creado: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "nombre (obligatorio)")
	f.StringVar(&form.Type, "type", "", "tipo (por defecto Type1)")
	f.StringVar(&form.Barcode, "barcode", "", "código de barras")
	f.StringVar(&form.Price, "price", "", "precio (obligatorio)")
	f.StringVar(&form.Supplier, "supplier", "", "proveedor (obligatorio)")
	f.StringVar(&form.Image, "image", "", "ruta de la imagen")
	f.StringVar(&warehouseID, "warehouse", "", "id del almacén, ver 'invex warehouses' (obligatorio)")
	f.StringVar(&form.Quantity, "quantity", "", "cantidad inicial (obligatorio)")
	return cmd
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Muestra las estadísticas del inventario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.Stats.Get(cmd.Context())
			if err != nil {
				return err
			}
			renderStatistics(a.Out, stats)
			return nil
		},
	}
}

func (a *app) reportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Exporta el catálogo a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "-" {
				_, err := a.Report.Export(cmd.Context(), a.Out)
				return err
			}
			var buf bytes.Buffer
			name, err := a.Report.Export(cmd.Context(), &buf)
			if err != nil {
				return err
			}
			if output == "" {
				output = name
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("guardar informe: %w", err)
			}
			a.printf("Informe guardado en %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo de salida ('-' = salida estándar)")
	return cmd
}
