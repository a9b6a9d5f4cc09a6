package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService    portssvc.CategorySvcFacade
	subcategoryService portssvc.SubcategorySvcFacade
}

// registerCategoryRoutes registers the category and subcategory routes.
func registerCategoryRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade, ss portssvc.SubcategorySvcFacade) {
	h := &categoryHandler{categoryService: cs, subcategoryService: ss}

	categories := rg.Group("/category")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/:id", h.getCategory)
	}

	subcategories := rg.Group("/subcategory")
	{
		subcategories.GET("", h.listSubcategories)
		subcategories.POST("", h.createSubcategory)
		subcategories.GET("/:id", h.getSubcategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.Response{data=domain.Category}
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate name"
// @Security BearerAuth
// @Router /category [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "category")
		return
	}
	respondOK(c, http.StatusCreated, "Category created successfully", category)
}

// getCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.Response{data=domain.Category}
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /category/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "category")
		return
	}
	respondOK(c, http.StatusOK, "Category fetched successfully", category)
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.Response{data=[]domain.Category}
// @Security BearerAuth
// @Router /category [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "category")
		return
	}
	respondOK(c, http.StatusOK, "Categories fetched successfully", categories)
}

// createSubcategory godoc
// @Summary Create a subcategory
// @Description Creates a subcategory owned by the caller. The response has the category populated.
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   subcategory body dto.CreateSubcategoryRequest true "Subcategory details"
// @Success 201 {object} dto.Response{data=domain.Subcategory}
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown category"
// @Security BearerAuth
// @Router /subcategory [post]
func (h *categoryHandler) createSubcategory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateSubcategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	subcategory, err := h.subcategoryService.CreateSubcategory(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "subcategory")
		return
	}
	respondOK(c, http.StatusCreated, "Subcategory created successfully", subcategory)
}

// getSubcategory godoc
// @Summary Get a subcategory by ID
// @Tags categories
// @Produce  json
// @Param   id path string true "Subcategory ID"
// @Success 200 {object} dto.Response{data=domain.Subcategory}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Subcategory not found"
// @Security BearerAuth
// @Router /subcategory/{id} [get]
func (h *categoryHandler) getSubcategory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	subcategory, err := h.subcategoryService.GetSubcategoryByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "subcategory")
		return
	}
	respondOK(c, http.StatusOK, "Subcategory fetched successfully", subcategory)
}

// listSubcategories godoc
// @Summary List subcategories
// @Description Lists the caller's subcategories (admins: all), optionally for one category.
// @Tags categories
// @Produce  json
// @Param   categoryId query string false "Category ID"
// @Success 200 {object} dto.Response{data=[]domain.Subcategory}
// @Security BearerAuth
// @Router /subcategory [get]
func (h *categoryHandler) listSubcategories(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params dto.ListSubcategoriesParams
	if !handleBindError(c, c.ShouldBindQuery(&params)) {
		return
	}

	subcategories, err := h.subcategoryService.ListSubcategories(c.Request.Context(), actor, params.CategoryID)
	if err != nil {
		respondError(c, err, "subcategory")
		return
	}
	respondOK(c, http.StatusOK, "Subcategories fetched successfully", subcategories)
}

type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func registerVendorRoutes(rg *gin.RouterGroup, vs portssvc.VendorSvcFacade) {
	h := &vendorHandler{vendorService: vs}

	vendors := rg.Group("/vendor")
	{
		vendors.GET("", h.listVendors)
		vendors.POST("", h.createVendor)
		vendors.GET("/:id", h.getVendor)
	}
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.Response{data=domain.Vendor}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /vendor [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateVendorRequest
	if !bindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "vendor")
		return
	}
	respondOK(c, http.StatusCreated, "Vendor created successfully", vendor)
}

// getVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Success 200 {object} dto.Response{data=domain.Vendor}
// @Failure 404 {object} dto.ErrorResponse "Vendor not found"
// @Security BearerAuth
// @Router /vendor/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "vendor")
		return
	}
	respondOK(c, http.StatusOK, "Vendor fetched successfully", vendor)
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce  json
// @Success 200 {object} dto.Response{data=[]domain.Vendor}
// @Security BearerAuth
// @Router /vendor [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "vendor")
		return
	}
	respondOK(c, http.StatusOK, "Vendors fetched successfully", vendors)
}
