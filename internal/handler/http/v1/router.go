package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)

		// Вложения инцидента
		incidents.GET("/:id/attachments", h.listAttachments)
		incidents.DELETE("/:id/attachments/:attachmentId", h.deleteAttachment)
	}

	api.GET("/choices", h.getChoices)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
