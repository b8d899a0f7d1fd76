package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/sirupsen/logrus"
)

func (h *Handler) createForm(c *gin.Context, draft *models.Draft) *formPage {
	return &formPage{
		Heading:   "Add Incident",
		Action:    listPath,
		Submit:    "Create",
		Draft:     draft,
		Choices:   h.incidentService.ResolveChoices(c.Request.Context()),
		CancelURL: listPath,
		MaxUpload: models.HumanSize(models.MaxUploadSize),
	}
}

func (h *Handler) editForm(c *gin.Context, id models.ID, draft *models.Draft) *formPage {
	return &formPage{
		Heading:   "Edit Incident",
		Action:    incidentPath(id, ""),
		Submit:    "Save",
		Draft:     draft,
		Choices:   h.incidentService.ResolveChoices(c.Request.Context()),
		CancelURL: listURL(1, "", "view", id.String()),
		MaxUpload: models.HumanSize(models.MaxUploadSize),
	}
}

// newIncidentForm открывает пустой черновик
func (h *Handler) newIncidentForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", h.createForm(c, models.NewDraft()))
}

// createIncident отправляет черновик. При ошибке форма отрисовывается
// заново с тем же черновиком, выбранные файлы нужно выбрать снова.
func (h *Handler) createIncident(c *gin.Context) {
	log := h.log(c, "createIncident")

	draft, files, ok := h.bindForm(c, log)
	if !ok {
		page := h.createForm(c, draft)
		page.Notice = &notice{Kind: "error", Message: "Invalid form submission."}
		c.HTML(http.StatusBadRequest, "form.html", page)
		return
	}

	sub, err := h.incidentService.CreateIncident(c.Request.Context(), draft, files)
	if err != nil {
		log.WithError(err).Warn("Create failed")
		page := h.createForm(c, draft)
		page.Notice = errorNotice(err)
		page.Missing = missingFields(err)
		c.HTML(statusFor(err), "form.html", page)
		return
	}

	c.Redirect(http.StatusSeeOther, withParams(listPath, submissionNotice(noticeCreated, sub)))
}

// editIncidentForm заполняет черновик из текущей записи
func (h *Handler) editIncidentForm(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "editIncidentForm").WithField("incident_id", id)

	inc, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to load incident for edit")
		c.HTML(statusFor(err), "form.html", &formPage{
			Heading:   "Edit Incident",
			LoadError: "Failed to load. " + describeError(err),
			CancelURL: listPath,
		})
		return
	}
	c.HTML(http.StatusOK, "form.html", h.editForm(c, id, models.DraftFromIncident(inc)))
}

// updateIncident отправляет изменения как частичное обновление
func (h *Handler) updateIncident(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "updateIncident").WithField("incident_id", id)

	draft, files, ok := h.bindForm(c, log)
	if !ok {
		page := h.editForm(c, id, draft)
		page.Notice = &notice{Kind: "error", Message: "Invalid form submission."}
		c.HTML(http.StatusBadRequest, "form.html", page)
		return
	}

	sub, err := h.incidentService.UpdateIncident(c.Request.Context(), id, draft, files)
	if err != nil {
		log.WithError(err).Warn("Update failed")
		page := h.editForm(c, id, draft)
		page.Notice = errorNotice(err)
		page.Missing = missingFields(err)
		c.HTML(statusFor(err), "form.html", page)
		return
	}

	params := submissionNotice(noticeUpdated, sub)
	params.Set("view", id.String())
	c.Redirect(http.StatusSeeOther, withParams(listPath, params))
}

// bindForm читает поля формы и выбранные файлы в порядке выбора.
// Пустая часть files, которую браузер шлет без выбранных файлов, пропускается.
func (h *Handler) bindForm(c *gin.Context, log *logrus.Entry) (*models.Draft, []models.PendingFile, bool) {
	draft := models.NewDraft()
	if err := c.ShouldBind(draft); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		return draft, nil, false
	}

	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return draft, nil, true
	}
	form, err := c.MultipartForm()
	if err != nil {
		log.WithError(err).Warn("Failed to parse multipart form")
		return draft, nil, false
	}
	return draft, models.PendingFromForm(form, "files"), true
}
