package api

import (
	"net/http"

	"github.com/phrazzld/hunterprice/internal/api/shared"
	"github.com/phrazzld/hunterprice/internal/service"
)

// UserHandler serves the user resources.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil") // ALLOW-PANIC
	}
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(r *http.Request, rc *shared.RequestContext) error {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		return err
	}
	rc.SetResult(http.StatusOK, NewUserResponses(users))
	return nil
}

// GetUser handles GET /users/{email}.
func (h *UserHandler) GetUser(r *http.Request, rc *shared.RequestContext) error {
	email, err := getPathString(r, "email")
	if err != nil {
		return err
	}

	user, err := h.userService.GetUserByEmail(r.Context(), email)
	if err != nil {
		return err
	}
	rc.SetResult(http.StatusOK, NewUserResponse(user))
	return nil
}
