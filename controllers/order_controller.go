package controllers

import (
	"strconv"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/pkg/resp"
	"github.com/Orbe-ERP/pos-backend/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders      *services.OrderService
	Settlements *services.SettlementService
}

func NewOrderController(orders *services.OrderService, settlements *services.SettlementService) *OrderController {
	return &OrderController{Orders: orders, Settlements: settlements}
}

// orderView decorates an order with its dominant-kitchen label. The label is
// derived on every read, never stored.
type orderView struct {
	entity.Order
	DominantKitchen string `json:"dominantKitchen"`
}

func toView(o entity.Order) orderView {
	return orderView{Order: o, DominantKitchen: services.DominantKitchen(o.Lines)}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, toView(*order))
}

// POST /order-lines — add items to an open order
func (oc *OrderController) AppendLines(c *gin.Context) {
	var req struct {
		OrderID uint                   `json:"orderId" binding:"required"`
		Items   []services.OrderLineIn `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.AppendLines(req.OrderID, req.Items)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, toView(*order))
}

// GET /orders?restaurantId=&status=
func (oc *OrderController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))

	orders, err := oc.Orders.ListForRestaurant(uint(restID), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toView(o))
	}
	resp.OK(c, gin.H{"items": views})
}

// GET /orders/table/:tableId
func (oc *OrderController) ListForTable(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("tableId"))

	orders, err := oc.Orders.OpenOrdersForTable(uint(tableID))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toView(o))
	}
	resp.OK(c, gin.H{"items": views})
}

// GET /orders/kitchen-queue?restaurantId=
func (oc *OrderController) KitchenQueue(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))

	queue, err := oc.Orders.KitchenQueue(uint(restID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, queue)
}

// PATCH /order-lines/status — line granularity is the only call shape;
// order-level summaries are derived from it.
func (oc *OrderController) AdvanceLines(c *gin.Context) {
	var req struct {
		OrderProductIDs []uint `json:"orderProductIds" binding:"required,min=1"`
		Status          string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	lines, err := oc.Orders.AdvanceLines(req.OrderProductIDs, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines})
}

// PATCH /order-lines/quantity
func (oc *OrderController) UpdateLineQuantity(c *gin.Context) {
	var req struct {
		OrderProductID uint `json:"orderProductId" binding:"required"`
		Quantity       int  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := oc.Orders.UpdateLineQuantity(req.OrderProductID, req.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, line)
}

// PATCH /orders/payment-method
func (oc *OrderController) SetPaymentMethod(c *gin.Context) {
	var req struct {
		ID            uint   `json:"id" binding:"required"`
		PaymentMethod string `json:"paymentMethod" binding:"required"`
		CardBrand     string `json:"cardBrand"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.SetPaymentMethod(req.ID, req.PaymentMethod, req.CardBrand)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, toView(*order))
}

// POST /orders/conclude
func (oc *OrderController) Conclude(c *gin.Context) {
	var req services.ConcludeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	settlement, err := oc.Settlements.Conclude(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, settlement)
}

// GET /orders/summary/:identifier?reprint=
func (oc *OrderController) Summary(c *gin.Context) {
	settlement, err := oc.Settlements.Summary(c.Param("identifier"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	reprint := c.Query("reprint") == "true"
	resp.OK(c, gin.H{"settlement": settlement, "reprint": reprint})
}
