package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/api/controllers"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
	mem "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/memcache"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/middleware"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const BasePath = "/api/admin"

type Params struct {
	fx.In

	Config  *config.Config
	Log     *zap.Logger
	JWT     *utils.JWTManager
	Revoker mem.TokenRevoker

	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Hotels    *controllers.HotelController
	Locations *controllers.LocationController
	Foods     *controllers.FoodOptionController
	Packages  *controllers.PackageController
	Gallery   *controllers.GalleryController
	Bookings  *controllers.BookingController
	Reviews   *controllers.ReviewController
	Dashboard *controllers.DashboardController
	Health    *controllers.HealthController
}

// crud is the route set shared by the catalog style resources.
type crud interface {
	List(c *gin.Context)
	Search(c *gin.Context)
	Picker(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func NewRouter(p Params) *gin.Engine {
	if !p.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Room for one image plus the JSON "data" field.
	r.MaxMultipartMemory = media.MaxImageBytes + 1<<20
	r.Use(
		middleware.TraceIDMiddleware(),
		middleware.RequestLogger(p.Log.Named("http")),
		gin.Recovery(),
		middleware.CORSMiddleware(p.Config.Server.CORSAllowedOrigins),
	)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(BasePath)
	api.GET("/health", p.Health.Health)

	loginLimiter := middleware.NewIPRateLimiter(p.Config.Auth.LoginRatePerMinute)
	auth := api.Group("/auth")
	auth.POST("/register", p.Auth.Register)
	auth.POST("/login", loginLimiter.Middleware(), p.Auth.Login)

	protected := api.Group("",
		middleware.AuthMiddleware(p.JWT, p.Revoker, p.Config.Auth.CookieName),
		middleware.RoleMiddleware(middleware.RoleAdmin),
	)
	protected.POST("/auth/logout", p.Auth.Logout)
	protected.GET("/auth/me", p.Auth.Me)

	users := protected.Group("/users")
	users.GET("", p.Users.List)
	users.GET("/search", p.Users.Search)
	users.GET("/picker", p.Users.Picker)
	users.GET("/:id", p.Users.Get)
	users.POST("", p.Users.Create)
	users.DELETE("/:id", p.Users.Delete)

	registerCRUD(protected.Group("/hotels"), p.Hotels)
	registerCRUD(protected.Group("/locations"), p.Locations)
	registerCRUD(protected.Group("/food-options"), p.Foods)
	registerCRUD(protected.Group("/packages"), p.Packages)
	registerCRUD(protected.Group("/gallery"), p.Gallery)

	bookings := protected.Group("/bookings")
	bookings.GET("", p.Bookings.List)
	bookings.GET("/search", p.Bookings.Search)
	bookings.GET("/:id", p.Bookings.Get)
	bookings.POST("", p.Bookings.Create)
	bookings.PUT("/:id", p.Bookings.Update)
	bookings.DELETE("/:id", p.Bookings.Delete)

	reviews := protected.Group("/reviews")
	reviews.GET("", p.Reviews.List)
	reviews.GET("/search", p.Reviews.Search)
	reviews.GET("/:id", p.Reviews.Get)
	reviews.POST("", p.Reviews.Create)
	reviews.PUT("/:id", p.Reviews.Update)
	reviews.DELETE("/:id", p.Reviews.Delete)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", p.Dashboard.Summary)
	dashboard.GET("/revenue/monthly", p.Dashboard.MonthlyRevenue)
	dashboard.GET("/top-packages", p.Dashboard.TopPackages)
	dashboard.GET("/recent-activity", p.Dashboard.RecentActivity)

	return r
}

func registerCRUD(g *gin.RouterGroup, h crud) {
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/picker", h.Picker)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
