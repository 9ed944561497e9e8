package controllers

import (
	"strconv"

	"github.com/Orbe-ERP/pos-backend/pkg/resp"
	"github.com/Orbe-ERP/pos-backend/services"
	"github.com/gin-gonic/gin"
)

type PaymentConfigController struct {
	Service *services.PaymentConfigService
}

func NewPaymentConfigController(s *services.PaymentConfigService) *PaymentConfigController {
	return &PaymentConfigController{Service: s}
}

// GET /payment-config?restaurantId=
func (pc *PaymentConfigController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	cfgs, err := pc.Service.List(uint(restID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cfgs})
}

// POST /payment-config — upsert by (restaurantId, method, brand)
func (pc *PaymentConfigController) Upsert(c *gin.Context) {
	var req struct {
		RestaurantID uint    `json:"restaurantId" binding:"required"`
		Method       string  `json:"method" binding:"required"`
		Brand        string  `json:"brand"`
		FeePercent   float64 `json:"feePercent"`
		FeeFixed     int64   `json:"feeFixed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cfg, err := pc.Service.Upsert(req.RestaurantID, req.Method, req.Brand, req.FeePercent, req.FeeFixed)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// DELETE /payment-config?restaurantId=&method=&brand= — idempotent
func (pc *PaymentConfigController) Delete(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	method := c.Query("method")
	if restID == 0 || method == "" {
		resp.BadRequest(c, "restaurantId and method are required")
		return
	}

	if err := pc.Service.Delete(uint(restID), method, c.Query("brand")); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
