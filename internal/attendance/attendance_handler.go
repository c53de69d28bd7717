package attendance

import (
	"net/http"
	"time"

	attendanceerrors "go-clocker/internal/attendance/errors"
	"go-clocker/internal/middleware"
	"go-clocker/internal/shared/apperror"
	"go-clocker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	maxFaceImageBytes = 5 << 20
	idempotentTTL     = 24 * time.Hour
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rbac middleware.RBACService, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, rbac: rbac, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("attendance request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// target resolves whose attendance a read is about: the caller's own unless
// an employee_id is given and the caller may read everyone's.
func (h *Handler) target(c *gin.Context, requested string) (string, error) {
	own := c.GetString("employee_id")
	if requested == "" || requested == own {
		if own == "" {
			return "", attendanceerrors.ErrEmployeeRequired
		}
		return own, nil
	}
	if !middleware.Allowed(c, h.rbac, "attendance", "read-all") {
		return "", apperror.ErrForbidden
	}
	return requested, nil
}

func (h *Handler) finishClock(c *gin.Context, status int, resp EventResponse, err error) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	middleware.StoreIdempotentResult(c, h.rdb, resp, idempotentTTL)
	response.Success(c, status, resp, nil)
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.ReleaseIdempotencyLock(c, h.rdb)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	h.finishClock(c, http.StatusCreated, resp, err)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.ReleaseIdempotencyLock(c, h.rdb)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	h.finishClock(c, http.StatusCreated, resp, err)
}

func (h *Handler) ClockByQR(c *gin.Context) {
	var req QRClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.ReleaseIdempotencyLock(c, h.rdb)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ClockByQR(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	h.finishClock(c, http.StatusCreated, resp, err)
}

func (h *Handler) ClockByFace(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFaceImageBytes)
	file, err := c.FormFile("image")
	if err != nil {
		h.writeServiceError(c, attendanceerrors.ErrFaceImageRequired)
		return
	}
	image, err := file.Open()
	if err != nil {
		h.writeServiceError(c, attendanceerrors.ErrFaceImageRequired)
		return
	}
	defer image.Close()

	resp, err := h.service.ClockByFace(c.Request.Context(), c.GetString("company_id"), image, file.Filename)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) IssueQRToken(c *gin.Context) {
	var req IssueQRTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.IssueQRToken(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Status(c *gin.Context) {
	employeeID, err := h.target(c, c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Status(c.Request.Context(), c.GetString("company_id"), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Timesheet(c *gin.Context) {
	employeeID, err := h.target(c, c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Timesheet(c.Request.Context(), c.GetString("company_id"), employeeID, c.Query("from"), c.Query("to"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if !middleware.Allowed(c, h.rbac, "attendance", "read-all") {
		own := c.GetString("employee_id")
		if own == "" {
			h.writeServiceError(c, attendanceerrors.ErrEmployeeRequired)
			return
		}
		q.EmployeeID = own
	}

	resp, total, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}
