package cleaning

import (
	"errors"
	"io"

	corecleaning "floorops/core/cleaning"
	"floorops/core/logger"
	"floorops/feature/cleaning/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for cleaning sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the cleaning routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/cleaning/sessions")
	group.Post("/", h.HandleCreateSession)
	group.Get("/:id", h.HandleGetSession)
	group.Delete("/:id", h.HandleDeleteSession)
	group.Get("/:id/original", h.HandleGetOriginal)
	group.Post("/:id/mode", h.HandleSetMode)
	group.Post("/:id/columns", h.HandleAssignColumn)
	group.Get("/:id/rows", h.HandleGetRows)
	group.Patch("/:id/rows/:rowID", h.HandleEditRow)
	group.Post("/:id/rows/:rowID/selection", h.HandleSelection)
	group.Post("/:id/rows/:rowID/promote", h.HandlePromote)
	group.Get("/:id/search", h.HandleSearch)
	group.Post("/:id/export", h.HandleExport)
}

// HandleCreateSession uploads a spreadsheet and starts a cleaning session.
// @Summary Create Cleaning Session
// @Description Upload a vendor spreadsheet (.xlsx/.csv) and start a cleaning session.
// @Tags cleaning
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file"
// @Success 201 {object} models.SessionSummary "Session"
// @Failure 400 {object} map[string]string "Bad Request (empty sheet, unsupported format)"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cleaning/sessions [post]
func (h *Handler) HandleCreateSession(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "multipart field 'file' is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return h.respondError(c, "Opening upload failed", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return h.respondError(c, "Reading upload failed", err)
	}

	summary, err := h.service.CreateSession(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return h.respondError(c, "Creating session failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// HandleGetSession returns the session summary.
// @Summary Get Cleaning Session
// @Description Get the session's phase, assignments and warnings.
// @Tags cleaning
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionSummary "Session"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cleaning/sessions/{id} [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	summary, err := h.service.GetSession(c.Params("id"))
	if err != nil {
		return h.respondError(c, "Fetching session failed", err)
	}
	return c.JSON(summary)
}

// HandleDeleteSession discards a session.
// @Summary Delete Cleaning Session
// @Description Discard a session and all of its in-memory state.
// @Tags cleaning
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cleaning/sessions/{id} [delete]
func (h *Handler) HandleDeleteSession(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.respondError(c, "Deleting session failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetOriginal streams the archived upload back, byte for byte.
// @Summary Download Original Upload
// @Description Download the archived original spreadsheet of a session.
// @Tags cleaning
// @Produce application/octet-stream
// @Param id path string true "Session ID"
// @Success 200 {file} file "Original upload"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cleaning/sessions/{id}/original [get]
func (h *Handler) HandleGetOriginal(c *fiber.Ctx) error {
	filename, body, err := h.service.OriginalUpload(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondError(c, "Fetching original upload failed", err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendStream(body)
}

// HandleSetMode switches the mode shown to the operator.
// @Summary Set Active Mode
// @Description Switch between size, name and price mode. Each mode keeps its own assignment and results.
// @Tags cleaning
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.SetModeRequest true "Mode"
// @Success 200 {object} models.SessionSummary "Session"
// @Failure 400 {object} map[string]string "Bad Request (unknown mode)"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cleaning/sessions/{id}/mode [post]
func (h *Handler) HandleSetMode(c *fiber.Ctx) error {
	var req models.SetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	summary, err := h.service.SetActiveMode(c.Params("id"), corecleaning.Mode(req.Mode))
	if err != nil {
		return h.respondError(c, "Switching mode failed", err)
	}
	return c.JSON(summary)
}

// HandleAssignColumn assigns a spreadsheet column to a cleaning mode.
// @Summary Assign Column
// @Description Assign a column to a mode and scan all rows. The first assignment loads the dictionaries.
// @Tags cleaning
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AssignColumnRequest true "Assignment"
// @Success 200 {object} models.SessionSummary "Session after the scan"
// @Failure 400 {object} map[string]string "Bad Request (unknown column or mode)"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cleaning/sessions/{id}/columns [post]
func (h *Handler) HandleAssignColumn(c *fiber.Ctx) error {
	var req models.AssignColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	summary, err := h.service.AssignColumn(c.Context(), c.Params("id"), corecleaning.Mode(req.Mode), req.Column)
	if err != nil {
		return h.respondError(c, "Assigning column failed", err)
	}
	return c.JSON(summary)
}

// HandleGetRows returns every row with its per-mode results.
// @Summary Get Rows
// @Description Get the session's rows with per-mode match results. When mode is given, results are narrowed to that mode.
// @Tags cleaning
// @Produce json
// @Param id path string true "Session ID"
// @Param mode query string false "size, name or price"
// @Success 200 {array} models.RowView "Rows"
// @Failure 400 {object} map[string]string "Bad Request (unknown mode)"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cleaning/sessions/{id}/rows [get]
func (h *Handler) HandleGetRows(c *fiber.Ctx) error {
	rows, err := h.service.Rows(c.Params("id"))
	if err != nil {
		return h.respondError(c, "Fetching rows failed", err)
	}
	if q := c.Query("mode"); q != "" {
		mode := corecleaning.Mode(q)
		if !mode.Valid() {
			return badRequest(c, "unknown mode "+q)
		}
		for _, row := range rows {
			for key := range row.Results {
				if key != q {
					delete(row.Results, key)
				}
			}
		}
	}
	return c.JSON(rows)
}

// HandleEditRow applies a direct value edit to one row.
// @Summary Edit Row
// @Description Replace a row's extracted value for a mode with an operator-supplied one.
// @Tags cleaning
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param rowID path string true "Row ID"
// @Param request body models.EditRowRequest true "Edit"
// @Success 200 {object} map[string]string "OK"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Conflict (no column assigned)"
// @Router /cleaning/sessions/{id}/rows/{rowID} [patch]
func (h *Handler) HandleEditRow(c *fiber.Ctx) error {
	var req models.EditRowRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.EditRow(c.Params("id"), corecleaning.Mode(req.Mode), c.Params("rowID"), req.Value); err != nil {
		return h.respondError(c, "Editing row failed", err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleSelection applies a span selection to one row.
// @Summary Select Span
// @Description Use a highlighted substring of the row's raw text as the extracted value (size and name modes).
// @Tags cleaning
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param rowID path string true "Row ID"
// @Param request body models.SelectionRequest true "Selection"
// @Success 200 {object} map[string]string "OK"
// @Failure 400 {object} map[string]string "Bad Request (price mode, empty selection)"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Conflict (no column assigned)"
// @Router /cleaning/sessions/{id}/rows/{rowID}/selection [post]
func (h *Handler) HandleSelection(c *fiber.Ctx) error {
	var req models.SelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.SelectSpan(c.Params("id"), corecleaning.Mode(req.Mode), c.Params("rowID"), req.Text); err != nil {
		return h.respondError(c, "Span selection failed", err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandlePromote promotes a row's correction into a dictionary rule.
// @Summary Promote Rule
// @Description Promote a NEW or manually overridden row into a dictionary rule and rescan the sheet.
// @Tags cleaning
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param rowID path string true "Row ID"
// @Param request body models.PromoteRequest true "Promotion"
// @Success 200 {object} models.SessionSummary "Session after the rescan"
// @Failure 400 {object} map[string]string "Bad Request (price mode)"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Conflict (row not promotable)"
// @Router /cleaning/sessions/{id}/rows/{rowID}/promote [post]
func (h *Handler) HandlePromote(c *fiber.Ctx) error {
	var req models.PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	id := c.Params("id")
	if err := h.service.Promote(c.Context(), id, corecleaning.Mode(req.Mode), c.Params("rowID")); err != nil {
		return h.respondError(c, "Rule promotion failed", err)
	}
	summary, err := h.service.GetSession(id)
	if err != nil {
		return h.respondError(c, "Fetching session failed", err)
	}
	return c.JSON(summary)
}

// HandleSearch searches canonical product names for the sidebar.
// @Summary Search Product Names
// @Description Search canonical product names. Responses overtaken by a newer query are marked superseded.
// @Tags cleaning
// @Produce json
// @Param id path string true "Session ID"
// @Param q query string true "Search query"
// @Success 200 {object} models.SearchResponse "Results"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cleaning/sessions/{id}/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	resp, err := h.service.Search(c.Context(), c.Params("id"), c.Query("q"))
	if err != nil {
		return h.respondError(c, "Search failed", err)
	}
	return c.JSON(resp)
}

// HandleExport writes the cleaned values back onto the original rows.
// @Summary Export Cleaned Sheet
// @Description Export the cleaned rows as JSON, or as a rebuilt file in the upload's format with ?format=file.
// @Tags cleaning
// @Produce json
// @Param id path string true "Session ID"
// @Param format query string false "json (default) or file"
// @Success 200 {object} models.ExportResponse "Cleaned rows"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cleaning/sessions/{id}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.Query("format") == "file" {
		filename, data, err := h.service.ExportFile(id)
		if err != nil {
			return h.respondError(c, "Export failed", err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(data)
	}

	resp, err := h.service.Export(id)
	if err != nil {
		return h.respondError(c, "Export failed", err)
	}
	return c.JSON(resp)
}

// respondError maps engine errors onto HTTP statuses: invalid input is 400,
// unknown sessions and rows are 404, sequencing violations are 409, the rest
// is 500.
func (h *Handler) respondError(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, corecleaning.ErrSessionNotFound),
		errors.Is(err, corecleaning.ErrRowNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, corecleaning.ErrEmptySheet),
		errors.Is(err, corecleaning.ErrUnknownColumn),
		errors.Is(err, corecleaning.ErrModeUnsupported):
		status = fiber.StatusBadRequest
	case errors.Is(err, corecleaning.ErrNoColumnAssigned),
		errors.Is(err, corecleaning.ErrNotPromotable):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
