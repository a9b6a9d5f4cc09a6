package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles the public credential endpoints.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up signup, login and password recovery. limit is
// applied to login and forgot-password.
func registerAuthRoutes(users *gin.RouterGroup, authService portssvc.AuthSvcFacade, limit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	users.POST("", h.signup)
	users.POST("/login", limit, h.login)
	users.POST("/forgotpassword", limit, h.forgotPassword)
	users.POST("/resetpassword", h.resetPassword)
}

// signup godoc
// @Summary Register a new user
// @Description Creates a user with the default role and sends a welcome email.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.Response{data=domain.User}
// @Failure 400 {object} dto.ErrorResponse "Validation error or email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	// Self-service signups never choose their role.
	req.RoleID = ""

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User signed up", slog.String("user_id", user.UserID))
	respondOK(c, http.StatusCreated, "User created successfully", user)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns the identity payload with an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 201 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Unknown email, inactive account or wrong password"
// @Failure 429 {object} dto.ErrorResponse
// @Router /user/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusCreated, "Login successful", resp)
}

// forgotPassword godoc
// @Summary Request a password reset
// @Description Emails a reset link valid for a short time.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.Response{data=dto.ForgotPasswordResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No account with this email"
// @Failure 429 {object} dto.ErrorResponse
// @Router /user/forgotpassword [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusOK, "Password reset link sent", resp)
}

// resetPassword godoc
// @Summary Reset a password
// @Description Consumes a reset token and stores the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user/resetpassword [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusOK, "Password reset successful", nil)
}
