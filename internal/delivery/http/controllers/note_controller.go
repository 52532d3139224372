package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"

	"noteful/internal/delivery/http/helpers"
	"noteful/internal/domain"
)

// CreateNoteRequest is the request body for POST /notes. An empty folderId
// means the note is not filed.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest is the request body for PUT /notes/{id}. Only the fields
// present are changed; folderId "" or null unfiles the note.
type UpdateNoteRequest struct {
	ID        string                    `json:"id,omitempty"`
	Title     domain.Optional[string]   `json:"title" swaggertype:"string"`
	Content   domain.Optional[string]   `json:"content" swaggertype:"string"`
	FolderID  domain.Optional[string]   `json:"folderId" swaggertype:"string"`
	Tags      domain.Optional[[]string] `json:"tags" swaggertype:"array,string"`
	CreatedAt json.RawMessage           `json:"createdAt,omitempty" swaggerignore:"true"`
	UpdatedAt json.RawMessage           `json:"updatedAt,omitempty" swaggerignore:"true"`
}

func (req UpdateNoteRequest) patch() domain.NotePatch {
	return domain.NotePatch{
		Title:    req.Title,
		Content:  req.Content,
		FolderID: req.FolderID,
		TagIDs:   req.Tags,
	}
}

type NoteController struct {
	Logger  *slog.Logger
	Service domain.NoteService
}

func NewNoteController(logger *slog.Logger, svc domain.NoteService) *NoteController {
	return &NoteController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List notes
// @Description Returns notes, most recently updated first. Filters combine with AND. Without page or page_size every match is returned.
// @Tags notes
// @Produce json
// @Param searchTerm query string false "Case-insensitive substring of title or content"
// @Param folderId query string false "Folder ID (UUID)"
// @Param tagId query string false "Tag ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {array} domain.Note
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /notes [get]
func (c *NoteController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.NoteFilter{
		SearchTerm: q.Get("searchTerm"),
		FolderID:   q.Get("folderId"),
		TagID:      q.Get("tagId"),
		Page:       helpers.ParsePagination(r),
	}
	notes, err := c.Service.List(r.Context(), filter)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, notes)
}

// GetByID godoc
// @Summary Get a note
// @Description The note's tags are expanded to full tag objects.
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} domain.NoteWithTags
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /notes/{id} [get]
func (c *NoteController) GetByID(w http.ResponseWriter, r *http.Request) {
	note, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, note)
}

// Create godoc
// @Summary Create a note
// @Description Folder and tag references must be well-formed; their existence is not checked.
// @Tags notes
// @Accept json
// @Produce json
// @Param note body CreateNoteRequest true "Note data"
// @Success 201 {object} domain.Note
// @Header 201 {string} Location "/notes/{id}"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /notes [post]
func (c *NoteController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	note, err := c.Service.Create(r.Context(), domain.NoteDraft{
		Title:    req.Title,
		Content:  req.Content,
		FolderID: req.FolderID,
		TagIDs:   req.Tags,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", path.Join(r.URL.Path, note.ID))
	helpers.WriteJSON(w, http.StatusCreated, note)
}

// Update godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Param note body UpdateNoteRequest true "Fields to change"
// @Success 200 {object} domain.Note
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /notes/{id} [put]
func (c *NoteController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateNoteRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := checkBodyID(id, req.ID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	note, err := c.Service.Update(r.Context(), id, req.patch())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, note)
}

// Delete godoc
// @Summary Delete a note
// @Description Idempotent.
// @Tags notes
// @Param id path string true "Note ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.NoContent(w)
}
