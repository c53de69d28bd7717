package payroll

import (
	"fmt"
	"net/http"

	"go-clocker/internal/middleware"
	payrollerrors "go-clocker/internal/payroll/errors"
	"go-clocker/internal/shared/apperror"
	"go-clocker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	logger  *zap.Logger
}

func NewHandler(service Service, rbac middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, rbac: rbac, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("payroll request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// bind reads the calculation parameters from the query string. Callers
// without payroll:read-all are pinned to their own employee record.
func (h *Handler) bind(c *gin.Context) (CalculateRequest, bool) {
	var req CalculateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return req, false
	}

	own := c.GetString("employee_id")
	if req.EmployeeID == "" || req.EmployeeID == own {
		if own == "" {
			h.writeServiceError(c, payrollerrors.ErrEmployeeRequired)
			return req, false
		}
		req.EmployeeID = own
		return req, true
	}
	if !middleware.Allowed(c, h.rbac, "payroll", "read-all") {
		h.writeServiceError(c, apperror.ErrForbidden)
		return req, false
	}
	return req, true
}

func (h *Handler) Calculate(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	pdf, filename, err := h.service.Payslip(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
