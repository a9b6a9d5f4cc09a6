package handlers

import (
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.Response
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.Response{Message: "Expense tracker API is running"})
}

func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", getHome)
}
