package handler

import (
	"github.com/labstack/echo/v4"

	"patronpoint/internal/usecase"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/response"
)

type LookupHandler struct {
	lookupUseCase *usecase.LookupUseCase
}

func NewLookupHandler(lookupUseCase *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{
		lookupUseCase: lookupUseCase,
	}
}

func (h *LookupHandler) SearchCustomer(c echo.Context) error {
	rawPhone := c.QueryParam("phone")
	if rawPhone == "" {
		return response.Error(c, errors.BadRequest("phone query parameter is required", nil))
	}

	result, err := h.lookupUseCase.SearchCustomer(c.Request().Context(), rawPhone)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
