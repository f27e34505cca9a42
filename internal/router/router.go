package router

import (
	"employee-directory/internal/handlers"
	"employee-directory/internal/middleware"

	"github.com/gin-gonic/gin"
)

func Setup(r *gin.Engine, ah *handlers.AuthHandler, eh *handlers.EmployeeHandler, auth *middleware.SessionAuth) {
	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	r.POST("/auth/login", ah.Login)
	r.POST("/auth/logout", ah.Logout)
	r.GET("/auth/me", auth.Authenticate(), ah.Me)

	api := r.Group("/api", auth.Authenticate())
	{
		api.GET("/status", eh.Status)
		api.GET("/employees", eh.List)
		api.POST("/employees", eh.Create)
		api.PUT("/employees/:id", eh.Update)
		api.DELETE("/employees/:id", eh.Delete)
		api.POST("/employees/export", eh.ExportRemote)
		api.GET("/employees/export.csv", eh.ExportLocal)
	}
}
