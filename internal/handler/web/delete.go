package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/sirupsen/logrus"
)

const confirmYes = "yes"

// confirmDeleteIncident показывает вопрос да/нет перед удалением
func (h *Handler) confirmDeleteIncident(c *gin.Context) {
	id := models.ID(c.Param("id"))
	c.HTML(http.StatusOK, "confirm.html", &confirmPage{
		Heading: "Delete incident",
		Message: "Delete this incident? This is a soft delete.",
		Action:  incidentPath(id, "/delete"),
		Return:  safeReturn(c.Query("return")),
	})
}

// deleteIncident удаляет только при confirm=yes, любой другой ответ - отмена
func (h *Handler) deleteIncident(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "deleteIncident").WithField("incident_id", id)
	returnTo := safeReturn(c.PostForm("return"))

	if c.PostForm("confirm") != confirmYes {
		log.Debug("Delete canceled")
		c.Redirect(http.StatusSeeOther, returnTo)
		return
	}

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Delete failed")
		c.Redirect(http.StatusSeeOther, withParams(returnTo, url.Values{"notice": {noticeDeleteFailed}}))
		return
	}
	c.Redirect(http.StatusSeeOther, withParams(returnTo, url.Values{"notice": {noticeDeleted}}))
}

func (h *Handler) confirmDeleteAttachment(c *gin.Context) {
	id := models.ID(c.Param("id"))
	c.HTML(http.StatusOK, "confirm.html", &confirmPage{
		Heading: "Delete attachment",
		Message: "Delete this attachment?",
		Action:  "/attachments/" + url.PathEscape(id.String()) + "/delete",
		Return:  safeReturn(c.Query("return")),
		Hidden:  map[string]string{"incident": c.Query("incident")},
	})
}

// deleteAttachment сбрасывает только вложения своего инцидента, список не трогается
func (h *Handler) deleteAttachment(c *gin.Context) {
	id := models.ID(c.Param("id"))
	incidentID := models.ID(c.PostForm("incident"))
	log := h.log(c, "deleteAttachment").WithFields(logrus.Fields{
		"attachment_id": id,
		"incident_id":   incidentID,
	})
	returnTo := safeReturn(c.PostForm("return"))

	if c.PostForm("confirm") != confirmYes {
		c.Redirect(http.StatusSeeOther, returnTo)
		return
	}

	if err := h.incidentService.DeleteAttachment(c.Request.Context(), incidentID, id); err != nil {
		log.WithError(err).Warn("Attachment delete failed")
		c.Redirect(http.StatusSeeOther, withParams(returnTo, url.Values{"notice": {noticeAttachmentDeleteFailed}}))
		return
	}
	c.Redirect(http.StatusSeeOther, withParams(returnTo, url.Values{"notice": {noticeAttachmentDeleted}}))
}
