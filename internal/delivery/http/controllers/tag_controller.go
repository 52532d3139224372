package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"

	"noteful/internal/delivery/http/helpers"
	"noteful/internal/domain"
)

// CreateTagRequest is the request body for POST /tags.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// UpdateTagRequest is the request body for PUT /tags/{id}. A client may
// send back the whole tag; id must then match the path, and the
// timestamps are ignored.
type UpdateTagRequest struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	CreatedAt json.RawMessage `json:"createdAt,omitempty" swaggerignore:"true"`
	UpdatedAt json.RawMessage `json:"updatedAt,omitempty" swaggerignore:"true"`
}

type TagController struct {
	Logger  *slog.Logger
	Service domain.TagService
}

func NewTagController(logger *slog.Logger, svc domain.TagService) *TagController {
	return &TagController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List tags
// @Description Returns every tag sorted by name, byte-wise (upper case before lower case).
// @Tags tags
// @Produce json
// @Success 200 {array} domain.Tag
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /tags [get]
func (c *TagController) List(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, tags)
}

// GetByID godoc
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {object} domain.Tag
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /tags/{id} [get]
func (c *TagController) GetByID(w http.ResponseWriter, r *http.Request) {
	tag, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, tag)
}

// Create godoc
// @Summary Create a tag
// @Description Tag names are unique. The Location header points at the new tag.
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body CreateTagRequest true "Tag name"
// @Success 201 {object} domain.Tag
// @Header 201 {string} Location "/tags/{id}"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /tags [post]
func (c *TagController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	tag, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", path.Join(r.URL.Path, tag.ID))
	helpers.WriteJSON(w, http.StatusCreated, tag)
}

// Update godoc
// @Summary Rename a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Param tag body UpdateTagRequest true "New name"
// @Success 200 {object} domain.Tag
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /tags/{id} [put]
func (c *TagController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateTagRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := checkBodyID(id, req.ID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	tag, err := c.Service.Update(r.Context(), id, req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, tag)
}

// Delete godoc
// @Summary Delete a tag
// @Description Idempotent. The tag is removed from every note that carries it unless the tag delete policy is "none".
// @Tags tags
// @Param id path string true "Tag ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /tags/{id} [delete]
func (c *TagController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.NoContent(w)
}
