// Package jobs runs the periodic maintenance work of the portal: the nightly
// export archive and the occupancy counter audit.
package jobs

import (
	"context"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	exportModel "hostel/internal/domains/export/model"
	exportService "hostel/internal/domains/export/service"
	occupancy "hostel/internal/domains/occupancy/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	cron    *cron.Cron
	cfg     *config.Config
	export  exportService.Export
	tracker occupancy.Tracker
	otel    otel.Otel
}

func New(cfg *config.Config, export exportService.Export, tracker occupancy.Tracker, otel otel.Otel) *Scheduler {
	logger := cron.PrintfLogger(&log.Logger)

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(timezone.GetLocation()),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		cfg:     cfg,
		export:  export,
		tracker: tracker,
		otel:    otel,
	}
}

// Start registers the jobs and starts the cron loop. It is a no-op when jobs
// are disabled so several replicas can run with only one scheduling.
func (s *Scheduler) Start() error {
	if !s.cfg.Hostel.EnableJobs {
		log.Info().Msg("background jobs disabled")

		return nil
	}

	schedules := []struct {
		name string
		spec string
		run  func(context.Context)
	}{
		{name: "archive", spec: s.cfg.Hostel.ArchiveSchedule, run: s.ArchiveExports},
		{name: "audit", spec: s.cfg.Hostel.AuditSchedule, run: s.AuditOccupancy},
	}

	for _, schedule := range schedules {
		if schedule.spec == "" {
			continue
		}

		run := schedule.run
		if _, err := s.cron.AddFunc(schedule.spec, func() { run(context.Background()) }); err != nil {
			return fmt.Errorf("failed to schedule %s job: %w", schedule.name, err)
		}

		log.Info().Str("job", schedule.name).Str("schedule", schedule.spec).Msg("job scheduled")
	}

	s.cron.Start()

	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// ArchiveExports uploads every export feed. A failing feed does not stop the others.
func (s *Scheduler) ArchiveExports(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".ArchiveExports")
	defer scope.End()

	for _, feed := range exportModel.Feeds {
		res, err := s.export.Archive(ctx, actor.System(), feed)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("feed", feed).Msg("failed to archive export")

			continue
		}

		log.Info().Str("feed", feed).Int("rows", res.Rows).Str("url", res.URL).Msg("export archived")
	}
}

// AuditOccupancy compares room counters with assigned students. Drift is only
// reported; repairing is left to staff.
func (s *Scheduler) AuditOccupancy(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".AuditOccupancy")
	defer scope.End()

	drifts, err := s.tracker.Audit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("occupancy audit failed")

		return
	}

	scope.SetAttribute("drifted_rooms", len(drifts))

	if len(drifts) == 0 {
		log.Debug().Msg("occupancy counters consistent")
	}
}
