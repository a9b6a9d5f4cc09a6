package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers the authenticated user routes.
func registerUserRoutes(users *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)
	admin := middleware.RequireAdmin()

	users.GET("", admin, h.listUsers)
	users.POST("/add", admin, h.createUser)
	users.GET("/:id", h.getUser)
	users.PUT("/:id", h.updateUser)
	users.DELETE("/:id", admin, h.deleteUser)
}

// registerRoleRoutes registers the role listing.
func registerRoleRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)
	rg.GET("/role", h.listRoles)
}

// createUser godoc
// @Summary Add a user
// @Description Creates a user with an explicit role (admin only)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details including roleId"
// @Success 201 {object} dto.Response{data=domain.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /user/add [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.RoleID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Validation failed",
			Errors:  map[string]string{"roleId": "roleId is required"},
		})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "user")
		return
	}

	logger.Info("User added by admin", slog.String("new_user_id", newUser.UserID))
	respondOK(c, http.StatusCreated, "User created successfully", newUser)
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves a user. Users may read themselves; admins anyone.
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.Response{data=domain.User}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /user/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusOK, "User fetched successfully", user)
}

// listUsers godoc
// @Summary List users
// @Description Retrieves every user with their role (admin only)
// @Tags users
// @Produce  json
// @Success 200 {object} dto.Response{data=[]domain.User}
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /user [get]
func (h *userHandler) listUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusOK, "Users fetched successfully", users)
}

// updateUser godoc
// @Summary Update a user
// @Description Updates profile fields. Only admins may change roleId or isActive.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /user/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusOK, "User updated successfully", user)
}

// deleteUser godoc
// @Summary Delete a user
// @Description Permanently removes a user (admin only)
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /user/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "user")
		return
	}
	respondOK(c, http.StatusOK, "User deleted successfully", nil)
}

// listRoles godoc
// @Summary List roles
// @Tags users
// @Produce  json
// @Success 200 {object} dto.Response{data=[]domain.Role}
// @Security BearerAuth
// @Router /role [get]
func (h *userHandler) listRoles(c *gin.Context) {
	roles, err := h.userService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err, "role")
		return
	}
	respondOK(c, http.StatusOK, "Roles fetched successfully", roles)
}
