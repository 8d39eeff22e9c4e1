package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Export=MockExportService

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	"hostel/infras/s3"
	"hostel/internal/domains/export/model"
	"hostel/internal/domains/export/model/dto"
	"hostel/internal/domains/export/repository"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"strconv"

	"github.com/rs/zerolog/log"
)

const archiveTimeFormat = "20060102T150405"

var (
	studentHeader   = []string{"username", "full_name", "roll_no", "contact", "course", "semester", "room"}
	roomHeader      = []string{"number", "capacity", "occupied"}
	complaintHeader = []string{"title", "student", "category", "status", "created_at"}
)

type Export interface {
	Render(ctx context.Context, act actor.Actor, feed string) (dto.CSVFile, error)
	Archive(ctx context.Context, act actor.Actor, feed string) (dto.ArchiveResponse, error)
}

type serviceImpl struct {
	repo    repository.Export
	storage s3.Storage
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Export, storage s3.Storage, cfg *config.Config, otel otel.Otel) Export {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

// Render builds the CSV for feed with its header row first.
func (s *serviceImpl) Render(ctx context.Context, act actor.Actor, feed string) (res dto.CSVFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".export.Render")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	records, err := s.records(ctx, feed)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err = writer.WriteAll(records); err != nil {
		log.Error().Err(err).Str("feed", feed).Msg("failed to write csv")

		return res, fmt.Errorf("failed to write csv: %w", err)
	}

	res.FileName = feed + ".csv"
	res.Data = buf.Bytes()
	res.Rows = len(records) - 1

	return res, nil
}

// Archive uploads a timestamped copy of the feed to object storage.
func (s *serviceImpl) Archive(ctx context.Context, act actor.Actor, feed string) (res dto.ArchiveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".export.Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	file, err := s.Render(ctx, act, feed)
	if err != nil {
		return res, err
	}

	fileName := fmt.Sprintf("%s-%s.csv", feed, timezone.Now().Format(archiveTimeFormat))

	url, err := s.storage.Upload(ctx, s.cfg.Hostel.ExportDir, fileName, constant.ContentTypeCSV, file.Data)
	if err != nil {
		log.Error().Err(err).Str("feed", feed).Msg("failed to archive export")

		return res, fmt.Errorf("failed to archive export: %w", err)
	}

	log.Info().Str("feed", feed).Str("url", url).Int("rows", file.Rows).Msg("export archived")

	res.Feed = feed
	res.FileName = fileName
	res.Rows = file.Rows
	res.URL = url

	return res, nil
}

func (s *serviceImpl) records(ctx context.Context, feed string) ([][]string, error) {
	switch feed {
	case model.FeedStudents:
		rows, err := s.repo.Students(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get students: %w", err)
		}

		records := [][]string{studentHeader}
		for _, row := range rows {
			records = append(records, []string{
				row.Username, row.FullName, row.RollNo, row.Contact, row.Course, strconv.Itoa(row.Semester), row.Room,
			})
		}

		return records, nil
	case model.FeedRooms:
		rows, err := s.repo.Rooms(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get rooms: %w", err)
		}

		records := [][]string{roomHeader}
		for _, row := range rows {
			records = append(records, []string{row.Number, strconv.Itoa(row.Capacity), strconv.Itoa(row.Occupied)})
		}

		return records, nil
	case model.FeedComplaints:
		rows, err := s.repo.Complaints(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get complaints: %w", err)
		}

		records := [][]string{complaintHeader}
		for _, row := range rows {
			records = append(records, []string{
				row.Title, row.Student, row.Category, row.Status, timezone.Format(row.CreatedAt, constant.DateFormat),
			})
		}

		return records, nil
	}

	return nil, failure.BadRequestFromString("unknown export feed " + strconv.Quote(feed))
}
