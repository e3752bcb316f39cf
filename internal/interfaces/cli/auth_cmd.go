package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invex/internal/application/auth"
	"github.com/jhoicas/invex/internal/domain"
)

func (a *app) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [código]",
		Short: "Inicia sesión con el código secreto del operario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				a.printf("Código secreto: ")
				line, err := bufio.NewReader(a.In).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("leer código: %w", err)
				}
				raw = strings.TrimSpace(line)
			}

			session, err := a.Auth.Login(cmd.Context(), auth.NormalizeSecret(raw))
			if err != nil {
				return err
			}
			a.printf("Sesión iniciada: operario %s, almacén %s\n", session.WarehousemanID(), session.WarehouseID())
			return nil
		},
	}
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y borra la caché local",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Una caché ilegible también se borra.
			session, err := a.Auth.Restore()
			if err != nil && !errors.Is(err, domain.ErrNoSession) {
				a.Log.Warn().Err(err).Msg("caché de sesión ilegible, se borra igualmente")
			}
			if err := a.Auth.Logout(session); err != nil {
				return err
			}
			a.printf("Sesión cerrada\n")
			return nil
		},
	}
}

func (a *app) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra el operario de la sesión actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session()
			if err != nil {
				return err
			}
			a.printf("Operario %s, almacén %s\n", session.WarehousemanID(), session.WarehouseID())
			return nil
		},
	}
}
