package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lcdc/selections-go/handlers"
	"github.com/lcdc/selections-go/middleware"
	"github.com/lcdc/selections-go/repositories"
	"github.com/lcdc/selections-go/services"
)

// RegisterRoutes wires repositories, services and handlers onto the
// engine. Staff-only routes go through middleware.Staff(); customer
// ownership checks live in the service layer.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repositories.New(db)
	svc := services.New(repos)
	h := handlers.New(svc)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	{
		forms := api.Group("/forms")
		{
			forms.POST("", middleware.Staff(), h.Form.CreateForm)
			forms.GET("", h.Form.ListForms)
			forms.GET("/my-forms", h.Form.GetMyForms)
			forms.GET("/:id", h.Form.GetFormByID)
			forms.PUT("/:id", middleware.Staff(), h.Form.UpdateFormDetails)
			forms.DELETE("/:id", middleware.Staff(), h.Form.DeleteForm)
			forms.PUT("/:id/data", h.Form.UpdateFormData)
			forms.POST("/:id/submit", h.Form.SubmitForm)
			forms.POST("/:id/reopen", middleware.Staff(), h.Form.ReopenForm)
			forms.POST("/:id/complete", middleware.Staff(), h.Form.CompleteForm)
			forms.GET("/:id/history", h.Form.GetFormHistory)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListMyNotifications)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}
	}
}
