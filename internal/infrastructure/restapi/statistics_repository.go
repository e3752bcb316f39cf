package restapi

import (
	"context"

	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo lectura de GET /statistics.
type StatisticsRepo struct {
	c *Client
}

// NewStatisticsRepository construye el adaptador.
func NewStatisticsRepository(c *Client) *StatisticsRepo {
	return &StatisticsRepo{c: c}
}

// Get devuelve los agregados tal cual los calcula el servidor.
func (r *StatisticsRepo) Get(ctx context.Context) (*entity.Statistics, error) {
	var out entity.Statistics
	if err := r.c.get(ctx, "/statistics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
