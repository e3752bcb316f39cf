package cli

import (
	"context"

	"github.com/spf13/cobra"

	appinventory "github.com/jhoicas/invex/internal/application/inventory"
	"github.com/jhoicas/invex/internal/domain/entity"
)

func (a *app) restockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restock <producto> <stock> <cantidad>",
		Short: "Suma la cantidad al stock indicado",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.adjust(cmd.Context(), args, (*appinventory.ProductDetailViewModel).Restock)
		},
	}
}

func (a *app) unloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unload <producto> <stock> <cantidad>",
		Short: "Resta la cantidad del stock indicado (sin bajar de 0)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.adjust(cmd.Context(), args, (*appinventory.ProductDetailViewModel).Unload)
		},
	}
}

type adjustFunc func(vm *appinventory.ProductDetailViewModel, ctx context.Context, stockID string) (entity.Product, error)

func (a *app) adjust(ctx context.Context, args []string, apply adjustFunc) error {
	session, err := a.session()
	if err != nil {
		return err
	}
	p, err := a.findProduct(ctx, args[0])
	if err != nil {
		return err
	}
	stockID := args[1]

	vm := appinventory.NewProductDetailViewModel(a.Products, session, *p, a.Log)
	vm.SetPendingQuantity(stockID, args[2])
	updated, err := apply(vm, ctx, stockID)
	if err != nil {
		return err
	}

	i := updated.FindStock(stockID)
	a.printf("%s / %s: %s unidades (total %s)\n",
		updated.Name, updated.Stocks[i].Name, quantity(updated.Stocks[i].Quantity), quantity(updated.TotalQuantity()))
	return nil
}
