package controllers

import (
	"errors"
	"strconv"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct{ DB *gorm.DB }

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

func (rc *RestaurantController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r := entity.Restaurant{Name: req.Name}
	if err := rc.DB.Create(&r).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, r)
}

func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var r entity.Restaurant
	if err := rc.DB.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, r)
}
