package cli

import (
	"errors"
	"fmt"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/infrastructure/restapi"
)

// Describe mensaje para el operario. Los errores sin traducción se muestran tal cual.
func Describe(err error) string {
	var se *restapi.StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrIncorrectCode):
		if errors.Is(err, domain.ErrTransport) {
			return domain.ErrIncorrectCode.Error() + " (no se pudo contactar con el servidor)"
		}
		return domain.ErrIncorrectCode.Error()
	case errors.Is(err, domain.ErrSecretTooShort):
		return domain.ErrSecretTooShort.Error()
	case errors.Is(err, domain.ErrNoSession):
		return "no hay sesión activa: ejecute 'invex login'"
	case errors.As(err, &se):
		return fmt.Sprintf("el servidor respondió HTTP %d a %s %s", se.Code, se.Method, se.Path)
	default:
		return err.Error()
	}
}
