package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/maxviazov/pagewindow/pkg/response"
)

type PaginationHandler struct {
	svc service.PaginationService
}

func NewPaginationHandler(svc service.PaginationService) *PaginationHandler {
	return &PaginationHandler{svc: svc}
}

func (h *PaginationHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/pagination")
	{
		g.GET("", h.describe)
		g.POST("/navigate", h.navigate)
	}
}

// describeQuery keeps absent parameters nil so the service can tell "unset" from an explicit 0.
type describeQuery struct {
	TotalItems  *int   `form:"total_items"`
	PageSize    *int   `form:"page_size"`
	CurrentPage *int   `form:"current_page"`
	WindowSize  *int   `form:"window_size"`
	Action      string `form:"action"`
}

func (h *PaginationHandler) describe(c *gin.Context) {
	var q describeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parse details stay internal
		return
	}
	meta, err := h.svc.Describe(c.Request.Context(), service.DescribeRequest{
		Config: pagination.Config{
			TotalItems:  q.TotalItems,
			PageSize:    q.PageSize,
			CurrentPage: q.CurrentPage,
			WindowSize:  q.WindowSize,
		},
		Action: q.Action,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, meta)
}

func (h *PaginationHandler) navigate(c *gin.Context) {
	var req service.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	res, err := h.svc.Navigate(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
