package controllers

import (
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// ProductController handles the grocery catalog
type ProductController struct {
	products *services.ProductService
}

// NewProductController creates a ProductController
func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func (ctl *ProductController) GetProducts(c *gin.Context) {
	var filters dto.ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	products := ctl.products.GetAll(filters.Category, filters.Search)
	response.SuccessWithTotal(c, products, len(products))
}

func (ctl *ProductController) GetFeaturedProducts(c *gin.Context) {
	products := ctl.products.GetFeatured()
	response.SuccessWithTotal(c, products, len(products))
}

func (ctl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctl.products.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, product)
}

func (ctl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidateProduct(&req); err != nil {
		respondError(c, err)
		return
	}

	product := ctl.products.Create(models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
		Discount:    req.Discount,
		Unit:        req.Unit,
	})

	response.Success(c, product)
}

func (ctl *ProductController) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	product, err := ctl.products.Update(req.ID, services.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
		Discount:    req.Discount,
		Unit:        req.Unit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, product)
}

func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.products.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}
