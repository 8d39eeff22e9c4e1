package service

import (
	"context"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	"hostel/internal/domains/messmenu/model/dto"
	"hostel/internal/domains/messmenu/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/cache"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheWeekMenu   = "messmenu:week"
	defaultMenuDays = 7
)

type MessMenu interface {
	Upsert(ctx context.Context, act actor.Actor, req dto.UpsertMenuRequest) (dto.MenuResponse, error)
	GetWeek(ctx context.Context, act actor.Actor) (dto.WeekMenuResponse, error)
}

type serviceImpl struct {
	repo  repository.MessMenu
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.MessMenu, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) MessMenu {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Upsert replaces the meals for one date. Cached weeks are dropped before
// returning so the next read sees the change.
func (s *serviceImpl) Upsert(ctx context.Context, act actor.Actor, req dto.UpsertMenuRequest) (res dto.MenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messmenu.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	date, err := timezone.Parse(constant.DayDateFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD")
	}

	menu, err := s.repo.Upsert(ctx, req.ToModel(date, act.UserID, timezone.Now()))
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to upsert mess menu")

		return res, fmt.Errorf("failed to upsert mess menu: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheWeekMenu)

	res.FromModel(menu)
	res.Date = req.Date
	res.Weekday = date.Weekday().String()

	return res, nil
}

func (s *serviceImpl) GetWeek(ctx context.Context, act actor.Actor) (res dto.WeekMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messmenu.GetWeek")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	n := s.cfg.Hostel.MessMenuDays
	if n <= 0 {
		n = defaultMenuDays
	}

	days := timezone.Days(timezone.Today(), n)
	cacheKey := shared.BuildCacheKey(cacheWeekMenu, days[0].Format(constant.DayDateFormat))

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for mess menu")

		return res, nil
	}

	menus, err := s.repo.GetRange(ctx, days[0], days[len(days)-1])
	if err != nil {
		log.Error().Err(err).Msg("failed to get mess menus")

		return res, fmt.Errorf("failed to get mess menus: %w", err)
	}

	res.FromModels(days, menus)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save mess menu to cache")
	}

	return res, nil
}
