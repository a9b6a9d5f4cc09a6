package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler handles sign-in with a Google authorization code.
type googleOAuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := &googleOAuthHandler{authService: authService}
	googleRoutes := rg.Group("/google")
	{
		googleRoutes.POST("/exchange-code", h.exchangeCodeGoogle)
	}
}

// exchangeCodeGoogle godoc
// @Summary Sign in with Google
// @Description Exchanges a Google authorization code, finds or provisions the user and returns the login payload.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 201 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 401 {object} dto.ErrorResponse "Invalid Google ID token"
// @Failure 502 {object} dto.ErrorResponse "Google unreachable"
// @Router /user/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusCreated, "Login successful", resp)
}
