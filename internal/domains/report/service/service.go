package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/s3"
	dashboardService "hotel/internal/domains/dashboard/service"
	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/render"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Report interface {
	Export(ctx context.Context, format string) (model.Document, error)
	Archive(ctx context.Context) (dto.ArchiveResponse, error)
}

type serviceImpl struct {
	dashboard dashboardService.Dashboard
	cfg       *config.Config
	otel      otel.Otel
	s3        s3.S3
}

func New(dashboard dashboardService.Dashboard, cfg *config.Config, otel otel.Otel, s3 s3.S3) Report {
	return &serviceImpl{
		dashboard: dashboard,
		cfg:       cfg,
		otel:      otel,
		s3:        s3,
	}
}

// Export renders the current dashboard view. No extra reads are made beyond what the
// dashboard already holds, so figures match what the admin is looking at.
func (s *serviceImpl) Export(ctx context.Context, format string) (doc model.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.current(ctx)
	if err != nil {
		return doc, err
	}

	return s.render(report, format)
}

// Archive renders both formats from one snapshot and stores them in object storage.
func (s *serviceImpl) Archive(ctx context.Context) (res dto.ArchiveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	res.GeneratedAt = timezone.Format(report.GeneratedAt, constant.DateFormat)
	res.BookingCount = len(report.Rows)

	for _, format := range []string{model.FormatCSV, model.FormatPDF} {
		doc, err := s.render(report, format)
		if err != nil {
			return res, err
		}

		url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, s.cfg.Report.ArchiveDir, doc.FileName, doc.ContentType, doc.Body)
		if err != nil {
			log.Error().Err(err).Str("file", doc.FileName).Msg("failed to archive report")

			return res, fmt.Errorf("failed to archive report: %w", err)
		}

		res.Files = append(res.Files, dto.ArchivedFile{
			Format:   format,
			FileName: doc.FileName,
			URL:      url,
		})
	}

	return res, nil
}

func (s *serviceImpl) current(ctx context.Context) (model.Report, error) {
	snapshot, err := s.dashboard.Get(ctx, false)
	if err != nil {
		return model.Report{}, err //nolint:wrapcheck
	}

	return model.New(s.cfg.Report.HotelName, timezone.Now(), snapshot), nil
}

func (s *serviceImpl) render(report model.Report, format string) (doc model.Document, err error) {
	var buf bytes.Buffer

	switch format {
	case model.FormatCSV:
		doc.ContentType = constant.ContentTypeCSV
		err = render.CSV(&buf, report)
	case model.FormatPDF:
		doc.ContentType = constant.ContentTypePDF
		err = render.PDF(&buf, report, render.PDFOptions{
			RowsPerPage: s.cfg.Report.RowsPerPage,
			Compress:    true,
		})
	default:
		return doc, failure.BadRequestFromString("unsupported report format " + format) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("format", format).Msg("failed to render report")

		return doc, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	metrics.ReportExportsTotal.WithLabelValues(format).Inc()

	doc.FileName = report.FileName(format)
	doc.Body = buf.Bytes()

	return doc, nil
}
