package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/notable/notes-api/internal/api/metrics"
	"github.com/notable/notes-api/internal/core/domain"
	"github.com/notable/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. Domain errors are
// returned as-is and mapped centrally by the API error handler.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// Create handles POST /v1/notes.
//
// @Summary      Create a note or checklist
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note details"
// @Success      201   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		return err
	}

	metrics.NotesCreatedTotal.WithLabelValues(string(note.Type)).Inc()
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

// List handles GET /v1/notes.
//
// @Summary      List the requester's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        type             query     string  false  "Filter by type (note|checklist)"
// @Param        tag              query     string  false  "Filter by tag"
// @Param        search           query     string  false  "Case-insensitive substring match on title or body"
// @Param        include_deleted  query     bool    false  "Include soft-deleted notes"
// @Success      200              {object}  listNotesResponse
// @Failure      401              {object}  errorResponse
// @Router       /v1/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	includeDeleted, _ := strconv.ParseBool(c.QueryParam("include_deleted"))
	filter := ports.ListNotesFilter{
		UserID:         userID,
		Type:           domain.NoteType(c.QueryParam("type")),
		Tag:            c.QueryParam("tag"),
		Search:         c.QueryParam("search"),
		IncludeDeleted: includeDeleted,
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "type must be one of: note checklist")
	}

	notes, err := h.service.FindAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(notes))
}

// Stats handles GET /v1/notes/stats.
//
// @Summary      Note statistics for the requester
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  noteStatsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/notes/stats [get]
func (h *NoteHandler) Stats(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.service.GetStats(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, noteStatsResponse{
		Total:      stats.Total,
		Notes:      stats.Notes,
		Checklists: stats.Checklists,
		Deleted:    stats.Deleted,
	})
}

// Tags handles GET /v1/notes/tags.
//
// @Summary      All tags used by the requester
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tagsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/notes/tags [get]
func (h *NoteHandler) Tags(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tags, err := h.service.GetTags(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tagsResponse{Tags: tags})
}

// Get handles GET /v1/notes/:id.
//
// @Summary      Get a note by id
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  noteResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	note, err := h.service.FindOne(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Update handles PATCH /v1/notes/:id.
//
// @Summary      Partially update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note id"
// @Param        body  body      updateNoteRequest  true  "Sparse patch"
// @Success      200   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/notes/{id} [patch]
func (h *NoteHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, toUpdatePatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Remove handles DELETE /v1/notes/:id — soft delete.
//
// @Summary      Soft-delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        id  path  string  true  "Note id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/notes/{id} [delete]
func (h *NoteHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.NotesDeletedTotal.WithLabelValues("soft").Inc()
	return c.NoContent(http.StatusNoContent)
}

// HardDelete handles DELETE /v1/notes/:id/hard — permanent removal.
//
// @Summary      Permanently delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        id  path  string  true  "Note id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/notes/{id}/hard [delete]
func (h *NoteHandler) HardDelete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.HardDelete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.NotesDeletedTotal.WithLabelValues("hard").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Restore handles POST /v1/notes/:id/restore.
//
// @Summary      Restore a soft-deleted note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  noteResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/notes/{id}/restore [post]
func (h *NoteHandler) Restore(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	note, err := h.service.Restore(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	metrics.NotesRestoredTotal.Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}
