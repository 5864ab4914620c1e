package api

import (
	"net/http"

	"github.com/phrazzld/hunterprice/internal/api/shared"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/phrazzld/hunterprice/internal/service"
)

// ListHandler serves a user's shopping lists.
type ListHandler struct {
	listService service.ListService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(listService service.ListService) *ListHandler {
	if listService == nil {
		panic("listService cannot be nil") // ALLOW-PANIC
	}
	return &ListHandler{listService: listService}
}

// ListLists handles GET /users/{email}/lists. Products are not included.
func (h *ListHandler) ListLists(r *http.Request, rc *shared.RequestContext) error {
	email, err := getPathString(r, "email")
	if err != nil {
		return err
	}

	lists, err := h.listService.ListsForUser(r.Context(), email)
	if err != nil {
		return err
	}
	rc.SetResult(http.StatusOK, NewListResponses(lists))
	return nil
}

// CreateList handles POST /users/{email}/lists.
func (h *ListHandler) CreateList(r *http.Request, rc *shared.RequestContext) error {
	email, err := getPathString(r, "email")
	if err != nil {
		return err
	}

	var req CreateListRequest
	if err := decodeBody(rc, &req); err != nil {
		return err
	}

	list, err := h.listService.CreateList(r.Context(), email, service.NewListInput{
		Name:         deref(req.Name),
		Description:  deref(req.Description),
		CreationTime: req.CreationTime.timePtr(),
	})
	if err != nil {
		return err
	}

	logger.FromContext(r.Context()).Debug("list created", "list_id", list.ID)
	rc.SetResult(http.StatusCreated, NewListResponse(list))
	return nil
}

// GetList handles GET /users/{email}/lists/{id}.
func (h *ListHandler) GetList(r *http.Request, rc *shared.RequestContext) error {
	email, err := getPathString(r, "email")
	if err != nil {
		return err
	}
	listID, err := getPathInt64(r, "id")
	if err != nil {
		return err
	}

	list, err := h.listService.GetList(r.Context(), email, listID)
	if err != nil {
		return err
	}
	rc.SetResult(http.StatusOK, NewListResponse(list))
	return nil
}

// UpdateList handles PUT /users/{email}/lists/{id}.
func (h *ListHandler) UpdateList(r *http.Request, rc *shared.RequestContext) error {
	email, err := getPathString(r, "email")
	if err != nil {
		return err
	}
	listID, err := getPathInt64(r, "id")
	if err != nil {
		return err
	}

	var req UpdateListRequest
	if err := decodeBody(rc, &req); err != nil {
		return err
	}

	list, err := h.listService.UpdateList(r.Context(), email, listID, req.ToListUpdate())
	if err != nil {
		return err
	}
	rc.SetResult(http.StatusOK, NewListResponse(list))
	return nil
}
