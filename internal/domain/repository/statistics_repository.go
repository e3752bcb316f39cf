package repository

import (
	"context"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// StatisticsRepository puerto de lectura de los agregados calculados por el servidor.
type StatisticsRepository interface {
	Get(ctx context.Context) (*entity.Statistics, error)
}
