package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcirstea/storefront/internal/core/domain"
	"github.com/mcirstea/storefront/internal/core/port"
	"github.com/mcirstea/storefront/internal/core/utils"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Login:    req.Login,
		Password: hashed,
	}

	_, err = uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Login, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, "User registered successfully", struct {
		Token string `json:"token"`
	}{Token: token}, http.StatusCreated)
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Login, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, "Login successful", struct {
		Token string `json:"token"`
	}{Token: token})
}

// DeleteUser removes a user account together with their orders.
func (uh *UserHandler) DeleteUser(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	err := uh.service.DeleteUser(ctx, payload.Role, ctx.Param("id"))
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, "User deleted successfully", nil)
}
