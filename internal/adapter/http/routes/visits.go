package routes

import (
	"github.com/gin-gonic/gin"

	"repair_visits/internal/adapter/http/handlers"
)

const (
	PathVisits = "/visits"
)

func addVisitRoutes(rg *gin.RouterGroup, visitHandler *handlers.VisitHandler) {
	visits := rg.Group(PathVisits)
	{
		visits.GET("", visitHandler.ListVisits)
		visits.GET("/stats", visitHandler.GetStats)
		visits.GET("/:id", visitHandler.GetVisit)
		visits.PATCH("/:id", visitHandler.UpdateVisit)
	}
}
