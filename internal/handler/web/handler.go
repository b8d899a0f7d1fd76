// Package web отдает консоль инцидентов как серверные HTML-страницы.
// Каждая страница заново читает данные через сервис, состояние в браузере не хранится.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/config"
	"github.com/shenikar/incident_console/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		cfg:             cfg,
	}
}

// RegisterRoutes подключает шаблоны и маршруты консоли
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(Templates())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/incidents")
	})

	incidents := router.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/new", h.newIncidentForm)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id/edit", h.editIncidentForm)
		incidents.POST("/:id", h.updateIncident)
		incidents.GET("/:id/delete", h.confirmDeleteIncident)
		incidents.POST("/:id/delete", h.deleteIncident)
		incidents.GET("/:id/attachments", h.attachmentPanel)
	}

	attachments := router.Group("/attachments")
	{
		attachments.GET("/:id/delete", h.confirmDeleteAttachment)
		attachments.POST("/:id/delete", h.deleteAttachment)
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"handler":    "web",
		"method":     method,
		"request_id": apiclient.RequestIDFrom(c.Request.Context()),
	})
}
