package handler

import (
	"net/http"
	"shop-admin/internal/dto"
	"shop-admin/internal/model"
	"shop-admin/internal/service"

	"github.com/labstack/echo/v4"
)

const adminOrdersTemplate = "admin_orders.html"

type AdminOrderHandler struct {
	adminOrderService service.AdminOrderService
}

func NewAdminOrderHandler(adminOrderService service.AdminOrderService) *AdminOrderHandler {
	return &AdminOrderHandler{
		adminOrderService: adminOrderService,
	}
}

func (h *AdminOrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	status := c.QueryParam("status")
	q := c.QueryParam("q")

	rows, err := h.adminOrderService.ListOrders(ctx, model.NewOrderFilter(status, q))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, adminOrdersTemplate, dto.AdminOrdersPage{
		Query:    q,
		Status:   status,
		Statuses: model.OrderStatuses,
		Rows:     rows,
	})
}
