package service

import (
	"context"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	"hostel/internal/domains/dashboard/model/dto"
	"hostel/internal/domains/dashboard/repository"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/timezone"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	summaryKey        = "summary"
	defaultSummaryTTL = 30 * time.Second
)

type Dashboard interface {
	Summary(ctx context.Context, act actor.Actor) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	store *cache.Cache
	otel  otel.Otel
}

// New keeps the summary in process memory. Counts may lag writes by the TTL.
func New(repo repository.Dashboard, cfg *config.Config, otel otel.Otel) Dashboard {
	ttl := time.Duration(cfg.Hostel.DashboardTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}

	return &serviceImpl{
		repo:  repo,
		store: cache.New(ttl, 2*ttl),
		otel:  otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context, act actor.Actor) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	if cached, found := s.store.Get(summaryKey); found {
		if summary, ok := cached.(dto.SummaryResponse); ok {
			return summary, nil
		}
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard summary")

		return res, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	res.FromModel(summary, timezone.Now().Format(constant.DateFormat))

	s.store.SetDefault(summaryKey, res)

	return res, nil
}
