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

// WarrantyHandler exposes the warranty and claim HTTP endpoints.
type WarrantyHandler struct {
	service *application.WarrantyService
	logger  *zap.Logger
}

// NewWarrantyHandler creates a new WarrantyHandler.
func NewWarrantyHandler(service *application.WarrantyService, logger *zap.Logger) *WarrantyHandler {
	return &WarrantyHandler{service: service, logger: logger}
}

// RegisterRoutes registers the warranty routes on the given router group.
func (h *WarrantyHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	warranties := r.Group("/api/v1/warranties")
	warranties.Use(middleware.AuthMiddleware(jwtManager))
	{
		warranties.POST("", middleware.RequireRole(auth.RoleAdmin), h.RegisterWarranty)
		warranties.GET("/eligibility/:itemId", h.CheckEligibility)
	}

	claims := r.Group("/api/v1/warranty-claims")
	claims.Use(middleware.AuthMiddleware(jwtManager))
	{
		claims.POST("", h.CreateClaim)
		claims.GET("", h.ListClaims)
		claims.GET("/:id", h.GetClaim)
		claims.GET("/number/:claimNumber", h.GetClaimByNumber)
	}
}

// RegisterWarranty handles POST /api/v1/warranties.
func (h *WarrantyHandler) RegisterWarranty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.BadRequest(c, "missing authenticated user")
		return
	}

	var req application.RegisterWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	w, err := h.service.RegisterWarranty(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, w)
}

// CheckEligibility handles GET /api/v1/warranties/eligibility/:itemId.
func (h *WarrantyHandler) CheckEligibility(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.BadRequest(c, "invalid booking item id")
		return
	}

	eligibility, err := h.service.CheckEligibility(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, eligibility)
}

// CreateClaim handles POST /api/v1/warranty-claims.
func (h *WarrantyHandler) CreateClaim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.BadRequest(c, "missing authenticated user")
		return
	}

	var req application.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	claim, err := h.service.CreateClaim(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, claim)
}

// GetClaim handles GET /api/v1/warranty-claims/:id.
func (h *WarrantyHandler) GetClaim(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid claim id")
		return
	}

	claim, err := h.service.GetClaim(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, claim)
}

// GetClaimByNumber handles GET /api/v1/warranty-claims/number/:claimNumber.
func (h *WarrantyHandler) GetClaimByNumber(c *gin.Context) {
	claim, err := h.service.GetClaimByNumber(c.Request.Context(), c.Param("claimNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, claim)
}

// ListClaims handles GET /api/v1/warranty-claims.
func (h *WarrantyHandler) ListClaims(c *gin.Context) {
	page, limit := parsePagination(c)

	q := application.ListClaimsQuery{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if raw := c.Query("is_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "invalid is_active")
			return
		}
		q.IsActive = &v
	}

	result, err := h.service.ListClaims(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}
