package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcirstea/storefront/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrTokenCreation:              http.StatusInternalServerError,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrEmptyOrder:         http.StatusBadRequest,
	domain.ErrInvalidLineItem:    http.StatusBadRequest,
	domain.ErrProductNotFound:    http.StatusBadRequest,
	domain.ErrInvalidOrderID:     http.StatusBadRequest,
	domain.ErrInvalidOrderStatus: http.StatusBadRequest,
	domain.ErrOrderNotFound:      http.StatusNotFound,
}

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleSuccess sends the envelope with the specified status code. A nil
// payload marshals as an empty object.
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, message string, data any, status int) {
	if data == nil {
		data = struct{}{}
	}
	ctx.JSON(status, response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (h *Handler) handleSuccess(ctx *gin.Context, message string, data any) {
	h.handleSuccessWithStatus(ctx, message, data, http.StatusOK)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, response{
		Success: false,
		Message: err.Error(),
		Data:    struct{}{},
	})
}

// handleValidationError sends an error response for a request body that
// could not be parsed.
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.handleError(ctx, domain.ErrBadRequest)
}

// handleAbort sends an error response and aborts the request, used by
// middleware.
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(statusCode, response{
		Success: false,
		Message: err.Error(),
		Data:    struct{}{},
	})
}
