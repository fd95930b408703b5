package handler

import (
	"github.com/labstack/echo/v4"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/usecase"
	"patronpoint/pkg/response"
)

type BusinessHandler struct {
	businessUseCase *usecase.BusinessUseCase
	leaderboardSize int
}

func NewBusinessHandler(businessUseCase *usecase.BusinessUseCase, leaderboardSize int) *BusinessHandler {
	return &BusinessHandler{
		businessUseCase: businessUseCase,
		leaderboardSize: leaderboardSize,
	}
}

type saveProfileRequest struct {
	BusinessName    string `json:"business_name" validate:"required,min=2"`
	BusinessWebsite string `json:"business_website" validate:"omitempty,url"`
	BusinessPhone   string `json:"business_phone" validate:"required"`
}

type businessResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	BusinessName     string `json:"business_name"`
	BusinessWebsite  string `json:"business_website,omitempty"`
	BusinessPhone    string `json:"business_phone"`
	ReportsSubmitted int64  `json:"reports_submitted"`
}

func newBusinessResponse(business *entity.Business) businessResponse {
	return businessResponse{
		ID:               business.ID,
		Email:            business.Email,
		BusinessName:     business.BusinessName,
		BusinessWebsite:  business.BusinessWebsite,
		BusinessPhone:    business.BusinessPhone,
		ReportsSubmitted: business.ReportsSubmitted,
	}
}

func (h *BusinessHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	business, err := h.businessUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newBusinessResponse(business))
}

func (h *BusinessHandler) SaveProfile(c echo.Context) error {
	var req saveProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	business, err := h.businessUseCase.SaveProfile(c.Request().Context(), uid, usecase.SaveProfileInput{
		BusinessName:    req.BusinessName,
		BusinessWebsite: req.BusinessWebsite,
		BusinessPhone:   req.BusinessPhone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newBusinessResponse(business))
}

func (h *BusinessHandler) GetLeaderboard(c echo.Context) error {
	uid := c.Get("uid").(string)

	board, err := h.businessUseCase.GetLeaderboard(c.Request().Context(), uid, h.leaderboardSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, board)
}

func (h *BusinessHandler) GetPerformance(c echo.Context) error {
	uid := c.Get("uid").(string)

	summary, err := h.businessUseCase.GetPerformance(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
