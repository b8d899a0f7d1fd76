package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/config"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/shenikar/incident_console/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": apiclient.RequestIDFrom(c.Request.Context()),
	})
}

// @Summary Get a list of incidents
// @Description Get one page of incidents, optionally filtered by a search term.
// @Tags Incidents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param search query string false "Search term"
// @Success 200 {object} IncidentPageResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 502 {object} ErrorResponse "Incident service unavailable"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.log(c, "listIncidents")

	var query ListIncidentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if query.Page == 0 {
		query.Page = 1
	}

	page, err := h.incidentService.ListIncidents(c.Request.Context(), query.Page, query.Search)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentPageResponse(page, query.Page, h.cfg.MediaBaseURL))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 502 {object} ErrorResponse "Incident service unavailable"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident, h.cfg.MediaBaseURL))
}

// @Summary Create a new incident
// @Description Create the incident record, then upload every file of the "files" field one at a time.
// @Description Files over 10 MiB are skipped. Upload failures are reported per file and do not fail the request.
// @Tags Incidents
// @Accept json,mpfd
// @Produce json
// @Param incident body models.Draft true "Incident fields"
// @Success 201 {object} SubmissionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Missing required fields"
// @Failure 502 {object} ErrorResponse "Incident service unavailable"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.log(c, "createIncident")

	draft, files, ok := h.bindDraft(c, log)
	if !ok {
		return
	}

	sub, err := h.incidentService.CreateIncident(c.Request.Context(), draft, files)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SubmissionToResponse(sub, h.cfg.MediaBaseURL))
}

// @Summary Update an existing incident
// @Description Send the edited fields as a partial update, then upload any new files.
// @Tags Incidents
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Incident ID"
// @Param incident body models.Draft true "Incident fields"
// @Success 200 {object} SubmissionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Missing required fields"
// @Failure 502 {object} ErrorResponse "Incident service unavailable"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncident(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "updateIncident").WithField("id", id)

	draft, files, ok := h.bindDraft(c, log)
	if !ok {
		return
	}

	sub, err := h.incidentService.UpdateIncident(c.Request.Context(), id, draft, files)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SubmissionToResponse(sub, h.cfg.MediaBaseURL))
}

// @Summary Delete an incident
// @Description The incident service deactivates the record.
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 502 {object} ErrorResponse "Incident service unavailable"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List attachments of an incident
// @Tags Attachments
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {array} AttachmentResponse
// @Failure 502 {object} ErrorResponse "Incident service unavailable"
// @Router /incidents/{id}/attachments [get]
func (h *Handler) listAttachments(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "listAttachments").WithField("id", id)

	attachments, err := h.incidentService.ListAttachments(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAttachmentResponses(attachments, id, h.cfg.MediaBaseURL))
}

// @Summary Delete an attachment
// @Tags Attachments
// @Param id path string true "Incident ID"
// @Param attachmentId path string true "Attachment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Attachment not found"
// @Router /incidents/{id}/attachments/{attachmentId} [delete]
func (h *Handler) deleteAttachment(c *gin.Context) {
	id := models.ID(c.Param("id"))
	attachmentID := models.ID(c.Param("attachmentId"))
	log := h.log(c, "deleteAttachment").WithFields(logrus.Fields{"id": id, "attachment_id": attachmentID})

	if err := h.incidentService.DeleteAttachment(c.Request.Context(), id, attachmentID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get form choices
// @Description Enumerations for the incident form. Falls back to a static table when the service is unavailable.
// @Tags Choices
// @Produce json
// @Success 200 {object} models.ChoiceSet
// @Router /choices [get]
func (h *Handler) getChoices(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.ResolveChoices(c.Request.Context()))
}

// @Summary Get application health status
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindDraft читает черновик из JSON или multipart-формы, файлы - из поля files
func (h *Handler) bindDraft(c *gin.Context, log *logrus.Entry) (*models.Draft, []models.PendingFile, bool) {
	draft := models.NewDraft()
	if err := c.ShouldBind(draft); err != nil {
		log.WithError(err).Warn("Failed to bind request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return nil, nil, false
	}

	var files []models.PendingFile
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		form, err := c.MultipartForm()
		if err != nil {
			log.WithError(err).Warn("Failed to parse multipart form")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
			return nil, nil, false
		}
		files = models.PendingFromForm(form, "files")
	}
	return draft, files, true
}
