package handlers

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadLimits bounds receipt uploads.
type UploadLimits struct {
	TmpDir   string
	MaxBytes int64
}

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	uploads        UploadLimits
}

// registerExpenseRoutes registers the expense routes. The path spellings
// are kept for existing clients.
func registerExpenseRoutes(rg *gin.RouterGroup, es portssvc.ExpenseSvcFacade, uploads UploadLimits) {
	h := &expenseHandler{expenseService: es, uploads: uploads}

	expenses := rg.Group("/expense")
	{
		expenses.GET("/expence", h.listExpenses)
		expenses.POST("/addexpence", h.createExpense)
		expenses.POST("/addWithFile", h.createExpenseWithFile)
		expenses.GET("/user/:userId", h.listExpensesByUser)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/updateExpence/:id", h.updateExpense)
		expenses.PUT("/updateExpenceStatus/:id", h.updateExpenseStatus)
		expenses.POST("/addComment/:id", h.addComment)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses with category, subcategory, vendor, account and user populated. Admins see all.
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.Response{data=[]domain.Expense}
// @Security BearerAuth
// @Router /expense/expence [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expenses fetched successfully", expenses)
}

// listExpensesByUser godoc
// @Summary List a user's expenses
// @Tags expenses
// @Produce  json
// @Param   userId path string true "User ID"
// @Success 200 {object} dto.Response{data=[]domain.Expense}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /expense/user/{userId} [get]
func (h *expenseHandler) listExpensesByUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpensesByUser(c.Request.Context(), actor, c.Param("userId"))
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expenses fetched successfully", expenses)
}

// getExpense godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.Response{data=domain.Expense}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expense/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expense fetched successfully", expense)
}

// createExpense godoc
// @Summary Create an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 200 {object} dto.Response{data=domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown reference"
// @Security BearerAuth
// @Router /expense/addexpence [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expense created successfully", expense)
}

// createExpenseWithFile godoc
// @Summary Create an expense with a receipt
// @Description Multipart form: the expense fields plus a "file" part holding the receipt.
// @Tags expenses
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Receipt image or PDF"
// @Param   title formData string true "Title"
// @Param   category formData string true "Category ID"
// @Param   subcategory formData string true "Subcategory ID"
// @Param   vendor formData string true "Vendor ID"
// @Param   account formData string true "Account ID"
// @Param   amount formData number true "Amount"
// @Param   transactionDate formData string false "Date (YYYY-MM-DD or RFC 3339)"
// @Param   description formData string false "Description"
// @Success 200 {object} dto.Response{data=domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Invalid input or file"
// @Failure 502 {object} dto.ErrorResponse "Receipt upload failed"
// @Security BearerAuth
// @Router /expense/addWithFile [post]
func (h *expenseHandler) createExpenseWithFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if h.uploads.MaxBytes > 0 {
		// Room for the other form fields on top of the file itself.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploads.MaxBytes+1<<20)
	}

	var req dto.CreateExpenseRequest
	if !bind(c, &req) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Validation failed",
			Errors:  map[string]string{"file": "file is required"},
		})
		return
	}
	if h.uploads.MaxBytes > 0 && file.Size > h.uploads.MaxBytes {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Validation failed",
			Errors:  map[string]string{"file": fmt.Sprintf("must be at most %d bytes", h.uploads.MaxBytes)},
		})
		return
	}
	contentType := receiptContentType(file.Filename, file.Header.Get("Content-Type"))
	if contentType == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Validation failed",
			Errors:  map[string]string{"file": "must be an image or a PDF"},
		})
		return
	}

	tmpPath := filepath.Join(h.uploads.TmpDir, uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to store upload locally", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store upload", Error: err.Error()})
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove temporary upload", slog.String("path", tmpPath), slog.String("error", err.Error()))
		}
	}()

	expense, err := h.expenseService.CreateExpenseWithReceipt(c.Request.Context(), actor, req, dto.ReceiptUpload{
		LocalPath:   tmpPath,
		FileName:    file.Filename,
		ContentType: contentType,
	})
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expense created successfully", expense)
}

// receiptContentType returns the upload's media type, or "" when it is
// neither an image nor a PDF.
func receiptContentType(fileName, declared string) string {
	ct := declared
	if ct == "" || ct == "application/octet-stream" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	if strings.HasPrefix(mediaType, "image/") || mediaType == "application/pdf" {
		return mediaType
	}
	return ""
}

// updateExpense godoc
// @Summary Update an expense
// @Description Partially updates the editable fields. Comments and status are not touched.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expense/updateExpence/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expense updated successfully", expense)
}

// updateExpenseStatus godoc
// @Summary Change an expense's status
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   status body dto.UpdateExpenseStatusRequest true "pending, approved or rejected"
// @Success 200 {object} dto.Response{data=domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expense/updateExpenceStatus/{id} [put]
func (h *expenseHandler) updateExpenseStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.UpdateExpenseStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expense status updated successfully", expense)
}

// addComment godoc
// @Summary Comment on an expense
// @Description Appends a comment. The author defaults to "Anonymous".
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   comment body dto.AddCommentRequest true "Comment"
// @Success 200 {object} dto.Response{data=domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Missing text"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expense/addComment/{id} [post]
func (h *expenseHandler) addComment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.AddComment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Comment added successfully", expense)
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expense/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "expense")
		return
	}
	respondOK(c, http.StatusOK, "Expense deleted successfully", nil)
}
