package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"

	"noteful/internal/delivery/http/helpers"
	"noteful/internal/domain"
)

// CreateFolderRequest is the request body for POST /folders.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// UpdateFolderRequest is the request body for PUT /folders/{id}. A client may
// send back the whole folder; id must then match the path, and the
// timestamps are ignored.
type UpdateFolderRequest struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	CreatedAt json.RawMessage `json:"createdAt,omitempty" swaggerignore:"true"`
	UpdatedAt json.RawMessage `json:"updatedAt,omitempty" swaggerignore:"true"`
}

type FolderController struct {
	Logger  *slog.Logger
	Service domain.FolderService
}

func NewFolderController(logger *slog.Logger, svc domain.FolderService) *FolderController {
	return &FolderController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List folders
// @Description Returns every folder sorted by name, byte-wise (upper case before lower case).
// @Tags folders
// @Produce json
// @Success 200 {array} domain.Folder
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /folders [get]
func (c *FolderController) List(w http.ResponseWriter, r *http.Request) {
	folders, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, folders)
}

// GetByID godoc
// @Summary Get a folder
// @Tags folders
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Success 200 {object} domain.Folder
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /folders/{id} [get]
func (c *FolderController) GetByID(w http.ResponseWriter, r *http.Request) {
	folder, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, folder)
}

// Create godoc
// @Summary Create a folder
// @Description Folder names are unique. The Location header points at the new folder.
// @Tags folders
// @Accept json
// @Produce json
// @Param folder body CreateFolderRequest true "Folder name"
// @Success 201 {object} domain.Folder
// @Header 201 {string} Location "/folders/{id}"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /folders [post]
func (c *FolderController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	folder, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", path.Join(r.URL.Path, folder.ID))
	helpers.WriteJSON(w, http.StatusCreated, folder)
}

// Update godoc
// @Summary Rename a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Param folder body UpdateFolderRequest true "New name"
// @Success 200 {object} domain.Folder
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /folders/{id} [put]
func (c *FolderController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateFolderRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := checkBodyID(id, req.ID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	folder, err := c.Service.Update(r.Context(), id, req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, folder)
}

// Delete godoc
// @Summary Delete a folder
// @Description Idempotent. Notes filed in the folder are unfiled unless the folder delete policy is "none".
// @Tags folders
// @Param id path string true "Folder ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /folders/{id} [delete]
func (c *FolderController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.NoContent(w)
}

// checkBodyID validates the path id, then requires a body id, if any, to match it.
func checkBodyID(pathID, bodyID string) error {
	if err := domain.RequireReference("id", pathID); err != nil {
		return err
	}
	if bodyID != "" && bodyID != pathID {
		return domain.IDMismatchError(pathID, bodyID)
	}
	return nil
}
