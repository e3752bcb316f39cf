package cli

import (
	"github.com/spf13/cobra"

	appinventory "github.com/jhoicas/invex/internal/application/inventory"
	"github.com/jhoicas/invex/internal/domain/inventory"
)

func (a *app) productsCommand() *cobra.Command {
	var (
		query string
		sorts []string
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Lista los productos, con búsqueda y ordenación",
		Long: "Lista los productos. --sort se puede repetir: cada aparición del mismo criterio\n" +
			"invierte su sentido (price, quantity, name; el primero es ascendente).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]inventory.SortKey, 0, len(sorts))
			for _, s := range sorts {
				k, err := inventory.ParseSortKey(s)
				if err != nil {
					return err
				}
				keys = append(keys, k)
			}

			vm := appinventory.NewProductListViewModel(a.Products, a.Lang)
			if err := vm.Load(cmd.Context()); err != nil {
				return err
			}
			for _, k := range keys {
				if err := vm.SortBy(k); err != nil {
					return err
				}
			}
			vm.Search(query)

			items := vm.Items()
			if len(items) == 0 {
				a.printf("Sin resultados\n")
				return nil
			}
			renderProducts(a.Out, items)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "texto a buscar en nombre, tipo, proveedor o precio")
	cmd.Flags().StringArrayVarP(&sorts, "sort", "s", nil, "criterio de orden: price, quantity o name")
	return cmd
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|código>",
		Short: "Muestra el detalle de un producto y sus stocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.findProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderProduct(a.Out, *p)
			return nil
		},
	}
}
