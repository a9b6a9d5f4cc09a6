package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

func registerIncomeRoutes(rg *gin.RouterGroup, is portssvc.IncomeSvcFacade) {
	h := &incomeHandler{incomeService: is}

	incomes := rg.Group("/income")
	{
		incomes.GET("", h.listIncomes)
		incomes.POST("", h.createIncome)
		incomes.GET("/total", h.getTotalIncome)
		incomes.GET("/:id", h.getIncome)
		incomes.PUT("/:id", h.updateIncome)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

// incomeTotalEnvelope repeats the total at the top level for older clients.
type incomeTotalEnvelope struct {
	Message     string                  `json:"message"`
	Data        dto.IncomeTotalResponse `json:"data"`
	TotalIncome decimal.Decimal         `json:"totalIncome"`
}

// getTotalIncome godoc
// @Summary Total completed income
// @Description Sums the completed incomes of a user (default: the caller).
// @Tags incomes
// @Produce  json
// @Param   userId query string false "User ID"
// @Success 200 {object} incomeTotalEnvelope
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /income/total [get]
func (h *incomeHandler) getTotalIncome(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params dto.IncomeTotalParams
	if !handleBindError(c, c.ShouldBindQuery(&params)) {
		return
	}

	total, err := h.incomeService.GetTotalIncome(c.Request.Context(), actor, params.UserID)
	if err != nil {
		respondError(c, err, "income")
		return
	}
	c.JSON(http.StatusOK, incomeTotalEnvelope{
		Message:     "Total income fetched successfully",
		Data:        dto.IncomeTotalResponse{TotalIncome: total},
		TotalIncome: total,
	})
}

// listIncomes godoc
// @Summary List incomes
// @Tags incomes
// @Produce  json
// @Success 200 {object} dto.Response{data=[]domain.Income}
// @Security BearerAuth
// @Router /income [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	incomes, err := h.incomeService.ListIncomes(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "income")
		return
	}
	respondOK(c, http.StatusOK, "Incomes fetched successfully", incomes)
}

// getIncome godoc
// @Summary Get an income by ID
// @Tags incomes
// @Produce  json
// @Param   id path string true "Income ID"
// @Success 200 {object} dto.Response{data=domain.Income}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Income not found"
// @Security BearerAuth
// @Router /income/{id} [get]
func (h *incomeHandler) getIncome(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	income, err := h.incomeService.GetIncomeByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "income")
		return
	}
	respondOK(c, http.StatusOK, "Income fetched successfully", income)
}

// createIncome godoc
// @Summary Create an income
// @Tags incomes
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.Response{data=domain.Income}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /income [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "income")
		return
	}
	respondOK(c, http.StatusCreated, "Income created successfully", income)
}

// updateIncome godoc
// @Summary Update an income
// @Tags incomes
// @Accept  json
// @Produce  json
// @Param   id path string true "Income ID"
// @Param   income body dto.UpdateIncomeRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.Income}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Income not found"
// @Security BearerAuth
// @Router /income/{id} [put]
func (h *incomeHandler) updateIncome(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.UpdateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	income, err := h.incomeService.UpdateIncome(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "income")
		return
	}
	respondOK(c, http.StatusOK, "Income updated successfully", income)
}

// deleteIncome godoc
// @Summary Delete an income
// @Tags incomes
// @Produce  json
// @Param   id path string true "Income ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Income not found"
// @Security BearerAuth
// @Router /income/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "income")
		return
	}
	respondOK(c, http.StatusOK, "Income deleted successfully", nil)
}
