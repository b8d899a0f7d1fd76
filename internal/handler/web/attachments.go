package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/models"
)

// attachmentPanel отдает фрагмент панели вложений, который страница
// подгружает, когда панель становится видимой
func (h *Handler) attachmentPanel(c *gin.Context) {
	id := models.ID(c.Param("id"))
	log := h.log(c, "attachmentPanel").WithField("incident_id", id)
	returnTo := safeReturn(c.Query("return"))

	list, err := h.incidentService.ListAttachments(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to load attachments")
		c.HTML(http.StatusOK, "attachments.html", &panelView{
			IncidentID: id,
			State:      panelFailed,
			Error:      describeError(err),
		})
		return
	}
	set := &models.ChoiceSet{}
	if len(list) > 0 {
		if resolved := h.incidentService.ResolveChoices(c.Request.Context()); resolved != nil {
			set = resolved
		}
	}
	c.HTML(http.StatusOK, "attachments.html", h.attachmentsPanel(id, list, set, returnTo))
}
