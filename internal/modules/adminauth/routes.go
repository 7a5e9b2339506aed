package adminauth

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the auth endpoints. Login is public; everything
// else sits behind the session middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}

	protected := rg.Group("")
	protected.Use(SessionAuth(h.service))
	{
		protected.POST("/auth/logout", h.Logout)
		protected.GET("/auth/me", h.GetMe)
		protected.GET("/auth/validate", h.Validate)

		accounts := protected.Group("/accounts")
		{
			accounts.GET("", RequirePermission("admin_accounts", "read"), h.ListAdmins)
			accounts.POST("", h.CreateAdmin)
		}
	}
}
