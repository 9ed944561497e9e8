package controllers

import (
	"errors"
	"strconv"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogController is the thin back-office surface for tables, categories,
// products and modifiers — just enough to feed the order engine.
type CatalogController struct{ DB *gorm.DB }

func NewCatalogController(db *gorm.DB) *CatalogController { return &CatalogController{DB: db} }

// ===== Tables =====

func (cc *CatalogController) CreateTable(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		RestaurantID uint   `json:"restaurantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := entity.Table{Name: req.Name, RestaurantID: req.RestaurantID}
	if err := cc.DB.Create(&t).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

func (cc *CatalogController) ListTables(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	var tables []entity.Table
	if err := cc.DB.Where("restaurant_id = ?", restID).Order("id").Find(&tables).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

// ===== Categories =====

func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		RestaurantID uint   `json:"restaurantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{Name: req.Name, RestaurantID: req.RestaurantID}
	if err := cc.DB.Create(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

func (cc *CatalogController) ListCategories(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	var cats []entity.Category
	if err := cc.DB.Where("restaurant_id = ?", restID).Order("id").Find(&cats).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// ===== Products =====

type productReq struct {
	Name         string `json:"name" binding:"required"`
	Price        int64  `json:"price" binding:"required,min=0"`
	CategoryID   uint   `json:"categoryId" binding:"required"`
	KitchenID    uint   `json:"kitchenId" binding:"required"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// the line->kitchen invariant starts here: a product must route somewhere
	var k entity.Kitchen
	if err := cc.DB.First(&k, req.KitchenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "kitchen not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if k.RestaurantID != req.RestaurantID {
		resp.BadRequest(c, "kitchen not in this restaurant")
		return
	}

	p := entity.Product{
		Name:         req.Name,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		KitchenID:    req.KitchenID,
		RestaurantID: req.RestaurantID,
	}
	if err := cc.DB.Create(&p).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

func (cc *CatalogController) ListProducts(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	var products []entity.Product
	if err := cc.DB.Where("restaurant_id = ?", restID).Order("id").Find(&products).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// ===== Modifiers =====

func (cc *CatalogController) CreateModifier(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		PriceDelta   int64  `json:"priceDelta"`
		RestaurantID uint   `json:"restaurantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.Modifier{Name: req.Name, PriceDelta: req.PriceDelta, RestaurantID: req.RestaurantID}
	if err := cc.DB.Create(&m).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

func (cc *CatalogController) ListModifiers(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	var mods []entity.Modifier
	if err := cc.DB.Where("restaurant_id = ?", restID).Order("id").Find(&mods).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": mods})
}
