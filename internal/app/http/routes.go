package routes

import (
	adminapi "marketing-app/internal/api/admin"
	authapi "marketing-app/internal/api/auth"
	"marketing-app/internal/api/billing"
	campaignsapi "marketing-app/internal/api/campaigns"
	editorapi "marketing-app/internal/api/editor"
	"marketing-app/internal/api/plans"
	stripewebhooks "marketing-app/internal/api/stripewebhook"
	subscribersapi "marketing-app/internal/api/subscribers"
	templatesapi "marketing-app/internal/api/templates"
	"marketing-app/internal/api/users"
	"marketing-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/me/sender", users.UpdateSender)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-password", authapi.ChangePassword)

	// Template editing accepts user-authored HTML fragments, so
	// sanitize writes before they reach the editor or the database.
	sanitized := auth.Group("/")
	sanitized.Use(middleware.SanitizeInputMiddleware())

	auth.GET("/templates", templatesapi.ListTemplates)
	auth.GET("/templates/:id", templatesapi.GetTemplate)
	sanitized.POST("/templates", templatesapi.CreateTemplate)
	sanitized.PUT("/templates/:id", templatesapi.UpdateTemplate)
	auth.DELETE("/templates/:id", templatesapi.DeleteTemplate)

	auth.POST("/templates/:id/publish", templatesapi.PublishTemplate)
	auth.POST("/templates/:id/unpublish", templatesapi.UnpublishTemplate)
	auth.GET("/templates/:id/render", templatesapi.RenderTemplate)

	auth.GET("/starter-templates", templatesapi.ListStarterTemplates)
	auth.POST("/starter-templates/:id/copy", templatesapi.CopyStarterTemplate)

	// Editor sessions
	auth.POST("/editor/sessions", editorapi.OpenSession)
	auth.GET("/editor/sessions/:id", editorapi.GetSession)
	auth.DELETE("/editor/sessions/:id", editorapi.CloseSession)

	sanitized.POST("/editor/sessions/:id/blocks", editorapi.AddBlock)
	sanitized.PATCH("/editor/sessions/:id/blocks/:blockID", editorapi.UpdateBlock)
	auth.DELETE("/editor/sessions/:id/blocks/:blockID", editorapi.DeleteBlock)
	auth.POST("/editor/sessions/:id/blocks/:blockID/duplicate", editorapi.DuplicateBlock)
	auth.POST("/editor/sessions/:id/blocks/:blockID/select", editorapi.SelectBlock)
	auth.PUT("/editor/sessions/:id/move", editorapi.MoveBlock)

	auth.POST("/editor/sessions/:id/undo", editorapi.Undo)
	auth.POST("/editor/sessions/:id/redo", editorapi.Redo)
	sanitized.PATCH("/editor/sessions/:id/settings", editorapi.UpdateSettings)
	auth.GET("/editor/sessions/:id/preview", editorapi.Preview)
	auth.POST("/editor/sessions/:id/save", editorapi.Save)

	// Audience
	auth.GET("/lists", subscribersapi.GetLists)
	sanitized.POST("/lists", subscribersapi.CreateList)
	sanitized.PUT("/lists/:id", subscribersapi.UpdateList)
	auth.DELETE("/lists/:id", subscribersapi.DeleteList)

	auth.GET("/lists/:id/subscribers", subscribersapi.GetSubscribers)
	sanitized.POST("/lists/:id/subscribers", subscribersapi.CreateSubscriber)
	sanitized.PUT("/subscribers/:id", subscribersapi.UpdateSubscriber)
	auth.DELETE("/subscribers/:id", subscribersapi.DeleteSubscriber)

	// Campaigns
	auth.GET("/campaigns", campaignsapi.GetCampaigns)
	auth.GET("/campaigns/:id", campaignsapi.GetCampaignByID)
	sanitized.POST("/campaigns", campaignsapi.CreateCampaign)
	sanitized.PUT("/campaigns/:id", campaignsapi.UpdateCampaign)
	auth.DELETE("/campaigns/:id", campaignsapi.DeleteCampaign)
	auth.GET("/campaigns/:id/html", campaignsapi.GetCampaignHTML)

	// Subscribed users
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.POST("/campaigns/:id/schedule", campaignsapi.ScheduleCampaign)
	subscribed.POST("/campaigns/:id/unschedule", campaignsapi.UnscheduleCampaign)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
	admin.POST("/starter-templates", templatesapi.CreateStarterTemplate)
}
