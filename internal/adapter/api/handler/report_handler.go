package handler

import (
	"github.com/labstack/echo/v4"

	"patronpoint/internal/usecase"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/response"
	"patronpoint/pkg/utils"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type submitReportRequest struct {
	CustomerPhone string `json:"customer_phone" validate:"required"`
	ReportType    string `json:"report_type" validate:"required,oneof=positive negative"`
	Reason        string `json:"reason" validate:"required"`
}

func (h *ReportHandler) SubmitReport(c echo.Context) error {
	var req submitReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	report, err := h.reportUseCase.Submit(c.Request().Context(), uid, usecase.SubmitReportInput{
		CustomerPhone: req.CustomerPhone,
		ReportType:    req.ReportType,
		Reason:        req.Reason,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func (h *ReportHandler) GetMyReports(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	reports, total, err := h.reportUseCase.ListByBusiness(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

func (h *ReportHandler) CheckCooldown(c echo.Context) error {
	customerPhone := c.QueryParam("phone")
	if customerPhone == "" {
		return response.Error(c, errors.BadRequest("phone query parameter is required", nil))
	}

	uid := c.Get("uid").(string)

	status, err := h.reportUseCase.CheckCooldown(c.Request().Context(), uid, customerPhone)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}

func (h *ReportHandler) GetReasonCatalog(c echo.Context) error {
	return response.Success(c, h.reportUseCase.Catalog())
}
