package report

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the report routes. It expects to be mounted under /admin.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings.csv", handler.ExportCSV)
		routerGroup.Get("/bookings.pdf", handler.ExportPDF)
		routerGroup.Post("/archive", handler.Archive)
	})
}

// ExportCSV downloads the booking report as CSV.
// @Summary Export bookings as CSV
// @Description Spreadsheet friendly CSV of the current dashboard view, with a totals row.
// @Tags Report
// @Produce text/csv
// @Success 200 {file} file
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reports/bookings.csv [get]
// @Security BearerAuth
func (handler *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	handler.export(w, r, model.FormatCSV)
}

// ExportPDF downloads the booking report as a printable document.
// @Summary Export bookings as PDF
// @Description A4 landscape report with summary, booking table and page numbers.
// @Tags Report
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reports/bookings.pdf [get]
// @Security BearerAuth
func (handler *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	handler.export(w, r, model.FormatPDF)
}

// Archive stores both report formats in object storage.
// @Summary Archive the booking report
// @Description Render CSV and PDF from the same snapshot and upload them to object storage.
// @Tags Report
// @Produce json
// @Success 201 {object} response.Data[dto.ArchiveResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reports/archive [post]
// @Security BearerAuth
func (handler *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Archive")
	defer scope.End()

	var (
		res dto.ArchiveResponse
		err error
	)

	if res, err = handler.service.Archive(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to archive report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report archived")

	response.WithJSON(w, http.StatusCreated, res)
}

func (handler *Handler) export(w http.ResponseWriter, r *http.Request, format string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	scope.SetAttribute("format", format)

	doc, err := handler.service.Export(ctx, format)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("format", format).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, doc.ContentType, doc.FileName, doc.Body)
}
