package routes

import (
	"net/http"

	"hospitality/configs"
	"hospitality/controllers"
	"hospitality/entity"
	"hospitality/middlewares"
	"hospitality/repository"
	"hospitality/services"
	"hospitality/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps are the collaborators the route table wires together. Only DB and
// Config are required.
type Deps struct {
	DB        *gorm.DB
	Config    *configs.Config
	Events    services.EventPublisher
	ImageHost services.ImageHost
	Hub       *ws.NotificationHub
	Limiter   *middlewares.RateLimiter
	Registry  *prometheus.Registry
}

// NewRouter builds the engine with logging, recovery and every route.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	events := d.Events
	if events == nil {
		events = services.NopPublisher{}
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))
	if d.Registry != nil {
		r.Use(middlewares.NewMetrics(d.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	healthCtrl := controllers.NewHealthController(d.DB)
	r.GET("/health", healthCtrl.Check)

	api := r.Group("/api")
	if d.Limiter != nil {
		api.Use(d.Limiter.Handler())
	}
	api.GET("/health", healthCtrl.Check)

	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin, entity.RoleSuperAdmin)
	superadminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSuperAdmin)

	// Resources: public reads for the marketing site, public create for the
	// booking and contact forms.
	mountResource(api, d.DB, events, adminOnly, services.MenuResource(), true, false)
	mountResource(api, d.DB, events, adminOnly, services.BookingResource(), false, true)
	mountResource(api, d.DB, events, adminOnly, services.ContactResource(), false, true)
	mountResource(api, d.DB, events, adminOnly, services.ServiceResource(), true, false)
	offers := mountResource(api, d.DB, events, adminOnly, services.OfferResource(), true, false)
	mountResource(api, d.DB, events, adminOnly, services.GalleryResource(), true, false)
	mountResource(api, d.DB, events, adminOnly, services.LeaderResource(), true, false)

	offerCodeCtrl := controllers.NewOfferCodeController(services.NewOfferCodeService(offers))
	api.GET("/offers/:id/qrcode", offerCodeCtrl.QRCode)

	// Content
	contentCtrl := controllers.NewContentController(
		services.NewContentService(repository.NewContentRepository(d.DB), events))
	content := api.Group("/content")
	{
		content.GET("", contentCtrl.List)
		content.GET("/section/:section", contentCtrl.Section)
		content.POST("", adminOnly, contentCtrl.Upsert)
		content.PUT("/bulk", adminOnly, contentCtrl.Bulk)
	}

	// Auth
	adminRepo := repository.NewAdminRepository(d.DB)
	authSvc := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	authCtrl := controllers.NewAuthController(authSvc)
	a := api.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/verify", adminOnly, authCtrl.Verify)
	}

	// One-time setup (public)
	setupCtrl := controllers.NewSetupController(services.NewSetupService(adminRepo, authSvc))
	setup := api.Group("/setup")
	{
		setup.GET("/admin-exists", setupCtrl.AdminExists)
		setup.POST("/setup", setupCtrl.Setup)
	}

	// Admin accounts (superadmin only)
	adminCtrl := controllers.NewAdminController(services.NewAdminService(adminRepo, events))
	api.GET("/admins", superadminOnly, adminCtrl.List)
	api.POST("/admin", superadminOnly, adminCtrl.Create)
	api.DELETE("/admin/:id", superadminOnly, adminCtrl.Delete)

	// Image upload
	uploadCtrl := controllers.NewUploadController(services.NewUploadService(d.ImageHost, cfg.UploadRootFolder))
	api.POST("/upload", adminOnly, uploadCtrl.Upload)

	// Live admin feed
	if d.Hub != nil {
		api.GET("/ws/admin", middlewares.WSAuthMiddleware(cfg.JWTSecret), d.Hub.HandleWebSocket)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

func mountResource[T any](
	api *gin.RouterGroup,
	db *gorm.DB,
	events services.EventPublisher,
	guard gin.HandlerFunc,
	res services.Resource[T],
	publicRead, publicCreate bool,
) *services.ResourceService[T] {
	svc := services.NewResourceService(res, repository.NewRepository[T](db), events)
	controllers.NewResourceController(svc).Mount(api.Group("/"+res.Name), guard, publicRead, publicCreate)
	return svc
}
