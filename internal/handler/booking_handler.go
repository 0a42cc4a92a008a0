package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fixhub/service-repair/internal/application"
	"github.com/fixhub/service-repair/internal/auth"
	"github.com/fixhub/service-repair/internal/middleware"
	"github.com/fixhub/service-repair/internal/response"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// BookingHandler exposes the booking HTTP endpoints.
type BookingHandler struct {
	service *application.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// RegisterRoutes registers the booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	bookings := r.Group("/api/v1/bookings")
	bookings.Use(middleware.AuthMiddleware(jwtManager))
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/code/:code", h.GetBookingByCode)
		bookings.PATCH("/:id", h.UpdateBooking)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/bookings/stats", h.GetBookingStats)
	}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.BadRequest(c, "missing authenticated user")
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bk, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, bk)
}

// UpdateBooking handles PATCH /api/v1/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.BadRequest(c, "missing authenticated user")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var req application.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bk, err := h.service.UpdateBooking(c.Request.Context(), id, userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bk)
}

// GetBooking handles GET /api/v1/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	bk, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bk)
}

// GetBookingByCode handles GET /api/v1/bookings/code/:code.
func (h *BookingHandler) GetBookingByCode(c *gin.Context) {
	bk, err := h.service.GetBookingByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bk)
}

// ListBookings handles GET /api/v1/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, limit := parsePagination(c)

	var locationID uint
	if raw := c.Query("location_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "invalid location_id")
			return
		}
		locationID = uint(v)
	}

	result, err := h.service.ListBookings(c.Request.Context(), application.ListBookingsQuery{
		Page:       page,
		Limit:      limit,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		LocationID: locationID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetBookingStats handles GET /api/v1/admin/bookings/stats.
func (h *BookingHandler) GetBookingStats(c *gin.Context) {
	stats, err := h.service.GetBookingStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func parsePagination(c *gin.Context) (int, int) {
	page := defaultPage
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
