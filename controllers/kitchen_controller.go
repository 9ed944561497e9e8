package controllers

import (
	"errors"
	"strconv"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/pkg/resp"
	"github.com/Orbe-ERP/pos-backend/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// KitchenController manages preparation stations. Deletion is refused while
// any non-terminal line still references the station.
type KitchenController struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
}

func NewKitchenController(db *gorm.DB, orderRepo *repository.OrderRepository) *KitchenController {
	return &KitchenController{DB: db, OrderRepo: orderRepo}
}

type kitchenReq struct {
	Name          string `json:"name" binding:"required"`
	Color         string `json:"color"`
	ShowOnKitchen *bool  `json:"showOnKitchen"`
	RestaurantID  uint   `json:"restaurantId" binding:"required"`
}

func (kc *KitchenController) Create(c *gin.Context) {
	var req kitchenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	show := true
	if req.ShowOnKitchen != nil {
		show = *req.ShowOnKitchen
	}
	k := entity.Kitchen{
		Name:          req.Name,
		Color:         req.Color,
		ShowOnKitchen: show,
		RestaurantID:  req.RestaurantID,
	}
	if err := kc.DB.Create(&k).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, k)
}

func (kc *KitchenController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	q := kc.DB.Where("restaurant_id = ?", restID)
	if c.Query("showOnKitchen") == "true" {
		q = q.Where("show_on_kitchen = ?", true)
	}

	var kitchens []entity.Kitchen
	if err := q.Order("id").Find(&kitchens).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": kitchens})
}

func (kc *KitchenController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var k entity.Kitchen
	if err := kc.DB.First(&k, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "kitchen not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req struct {
		Name          *string `json:"name"`
		Color         *string `json:"color"`
		ShowOnKitchen *bool   `json:"showOnKitchen"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name != nil {
		if *req.Name == "" {
			resp.BadRequest(c, "name must not be empty")
			return
		}
		k.Name = *req.Name
	}
	if req.Color != nil {
		k.Color = *req.Color
	}
	if req.ShowOnKitchen != nil {
		k.ShowOnKitchen = *req.ShowOnKitchen
	}

	if err := kc.DB.Save(&k).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, k)
}

func (kc *KitchenController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var k entity.Kitchen
	if err := kc.DB.First(&k, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "kitchen not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	inUse, err := kc.OrderRepo.KitchenInUseCount(k.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if inUse > 0 {
		resp.Conflict(c, "kitchen has active order lines")
		return
	}

	if err := kc.DB.Delete(&k).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": k.ID})
}
