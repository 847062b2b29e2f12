package queries

import (
	"context"

	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/config"
	"campo-agenda/internal/pkg/errs"
)

type ConfigViewRepo interface {
	OperatingHours(ctx context.Context) (*OperatingHoursView, error)
	Prices(ctx context.Context) ([]*PriceView, error)
}

type ConfigQueries interface {
	OperatingHours(ctx context.Context) (*OperatingHoursView, error)
	Prices(ctx context.Context) ([]*PriceView, error)
}

type configQueriesImpl struct {
	repo ConfigViewRepo
	cfg  config.ScheduleConfig
}

func NewConfigQueries(repo ConfigViewRepo, cfg config.ScheduleConfig) ConfigQueries {
	return &configQueriesImpl{repo: repo, cfg: cfg}
}

func (q *configQueriesImpl) OperatingHours(ctx context.Context) (*OperatingHoursView, error) {
	view, err := q.repo.OperatingHours(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &OperatingHoursView{Open: q.cfg.DefaultOpen, Close: q.cfg.DefaultClose}, nil
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *configQueriesImpl) Prices(ctx context.Context) ([]*PriceView, error) {
	views, err := q.repo.Prices(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
