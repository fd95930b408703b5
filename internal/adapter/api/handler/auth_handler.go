package handler

import (
	"github.com/labstack/echo/v4"

	"patronpoint/internal/usecase"
	"patronpoint/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	BusinessName    string `json:"business_name" validate:"required,min=2"`
	BusinessWebsite string `json:"business_website" validate:"omitempty,url"`
	BusinessPhone   string `json:"business_phone" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token    string           `json:"token"`
	Business businessResponse `json:"business"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		BusinessName:    req.BusinessName,
		BusinessWebsite: req.BusinessWebsite,
		BusinessPhone:   req.BusinessPhone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token:    result.Token,
		Business: newBusinessResponse(result.Business),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token:    result.Token,
		Business: newBusinessResponse(result.Business),
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	business, err := h.authUseCase.GetBusinessByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newBusinessResponse(business))
}
