package web

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/sirupsen/logrus"
)

// listIncidents отдает список. open раскрывает панель вложений строки,
// view открывает карточку инцидента. Карточка запрашивается только при view.
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.log(c, "listIncidents")
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	search := strings.TrimSpace(c.Query("search"))
	openID := models.ID(c.Query("open"))
	viewID := models.ID(c.Query("view"))

	data := &listPage{
		Search:  search,
		Page:    page,
		NextURL: listURL(page+1, search),
		Notice:  noticeFromQuery(c),
	}
	if page > 1 {
		data.PrevURL = listURL(page-1, search)
	}
	current := listURL(page, search, "open", openID.String())

	result, err := h.incidentService.ListIncidents(ctx, page, search)
	if err != nil {
		log.WithError(err).Warn("Failed to load incidents")
		data.LoadError = "Failed to load incidents. " + describeError(err)
	} else {
		data.Total = result.Total
		data.Shown = len(result.Items)
		for i, inc := range result.Items {
			if inc == nil || inc.ID.IsZero() {
				log.WithField("index", i).Warn("Skipping incident without id")
				continue
			}
			r := newRow(i+1, inc)
			r.ViewURL = listURL(page, search, "open", openID.String(), "view", inc.ID.String())
			r.DeleteURL = incidentPath(inc.ID, "/delete") + "?return=" + url.QueryEscape(listURL(page, search))
			if inc.ID == openID {
				r.ToggleURL = listURL(page, search)
				r.Panel = loadingPanel(inc.ID, current)
			} else {
				r.ToggleURL = listURL(page, search, "open", inc.ID.String())
			}
			data.Rows = append(data.Rows, r)
		}
	}

	if !viewID.IsZero() {
		data.Detail = h.detail(ctx, log, viewID, listURL(page, search, "open", openID.String()))
	}

	c.HTML(http.StatusOK, "list.html", data)
}

func (h *Handler) detail(ctx context.Context, log *logrus.Entry, id models.ID, closeURL string) *detailView {
	view := &detailView{ID: id, CloseURL: closeURL}

	inc, err := h.incidentService.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).WithField("incident_id", id).Warn("Failed to load incident details")
		view.Error = "Failed to load. " + describeError(err)
		return view
	}

	returnTo := listURLWithView(closeURL, id)
	view.Number = inc.IncidentNumber
	view.Fields = detailFields(inc, h.incidentService.ResolveChoices(ctx))
	view.Panel = loadingPanel(inc.ID, returnTo)
	view.EditURL = incidentPath(inc.ID, "/edit")
	return view
}
