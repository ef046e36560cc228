package dashboard

import (
	"net/http"
	"strconv"

	"hotel/infras/otel"
	bookingDto "hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/model/dto"
	"hotel/internal/domains/dashboard/service"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryRefresh = "refresh"

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the admin routes. It expects to be mounted under /admin.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)

	router.Route("/bookings/{id}", func(routerGroup chi.Router) {
		routerGroup.Patch("/status", handler.UpdateBookingStatus)
		routerGroup.Patch("/payment", handler.UpdatePaymentStatus)
		routerGroup.Delete("/", handler.DeleteBooking)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Patch("/{id}/availability", handler.ToggleRoomAvailability)
	})
}

// GetDashboard returns bookings, rooms and statistics.
// @Summary Admin dashboard
// @Description All bookings (newest first), all rooms (by type) and the derived statistics.
// @Tags Admin
// @Produce json
// @Param refresh query boolean false "Force a full reload"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	refresh, _ := strconv.ParseBool(r.URL.Query().Get(queryRefresh))

	snapshot, err := handler.service.Get(ctx, refresh)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	handler.respond(w, snapshot)
}

// UpdateBookingStatus cancels or restores a booking.
// @Summary Cancel or restore a booking
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.UpdateStatusRequest true "New booking status"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Restoring would overlap another booking"
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	req := bookingDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	snapshot, err := handler.service.SetBookingStatus(ctx, id, req.BookingStatus)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + id + " set to " + string(req.BookingStatus))

	handler.respond(w, snapshot)
}

// UpdatePaymentStatus records a payment state change.
// @Summary Set the payment status of a booking
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.UpdatePaymentRequest true "New payment status"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/payment [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	req := bookingDto.UpdatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	snapshot, err := handler.service.SetPaymentStatus(ctx, id, req.PaymentStatus)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Msg("failed to update payment status")

		response.WithError(w, err)

		return
	}

	handler.respond(w, snapshot)
}

// DeleteBooking removes a booking for good.
// @Summary Delete a booking
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	snapshot, err := handler.service.DeleteBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + id + " deleted")

	handler.respond(w, snapshot)
}

// CreateRoom adds a room to the inventory.
// @Summary Create a room
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Room name"
// @Param type formData string true "Room type" Enums(standard, deluxe, suite, presidential)
// @Param price_per_night formData integer true "Nightly price in rupiah"
// @Param capacity formData integer true "Maximum guests"
// @Param description formData string false "Description"
// @Param amenities formData string false "Comma separated amenities"
// @Param is_available formData boolean false "Bookable, defaults to true"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := roomDto.CreateRoomRequest{}

	err := req.Bind(r)
	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate room form")

		response.WithError(w, err)

		return
	}

	snapshot, err := handler.service.CreateRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	var res dto.DashboardResponse
	res.FromModel(snapshot)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateRoom edits room attributes. Only the sent fields change.
// @Summary Update a room
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param name formData string false "Room name"
// @Param type formData string false "Room type" Enums(standard, deluxe, suite, presidential)
// @Param price_per_night formData integer false "Nightly price in rupiah"
// @Param capacity formData integer false "Maximum guests"
// @Param description formData string false "Description"
// @Param amenities formData string false "Comma separated amenities"
// @Param image formData file false "Image appended to the gallery"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := roomDto.UpdateRoomRequest{}

	err := req.Bind(r)
	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate room form")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	snapshot, err := handler.service.UpdateRoom(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", id).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	handler.respond(w, snapshot)
}

// ToggleRoomAvailability flips whether a room can be booked.
// @Summary Enable or disable a room
// @Tags Admin
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id}/availability [patch]
// @Security BearerAuth
func (handler *Handler) ToggleRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleRoomAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	snapshot, err := handler.service.ToggleRoom(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", id).Msg("failed to toggle room availability")

		response.WithError(w, err)

		return
	}

	handler.respond(w, snapshot)
}

func (handler *Handler) respond(w http.ResponseWriter, snapshot model.Snapshot) {
	var res dto.DashboardResponse
	res.FromModel(snapshot)

	response.WithJSON(w, http.StatusOK, res)
}
