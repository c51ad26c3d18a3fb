package router

import (
	"net/http"
	"slices"
	"time"

	"taxcalc/api"
	"taxcalc/config"
	_ "taxcalc/docs"
	"taxcalc/middleware"
	"taxcalc/service"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps 路由依赖
type Deps struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	Notifier service.WelcomeNotifier
	Registry *prometheus.Registry
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	log := deps.Logger
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.CustomRecoveryWithZap(log, true, func(c *gin.Context, _ any) {
		api.InternalError(c, api.MsgInternalFailure)
		c.Abort()
	}))
	r.Use(middleware.RequestID())
	r.Use(metrics.Handler())
	r.Use(CORSMiddleware(cfg.Server.CORSOrigins))

	// 组装 service
	store := service.NewStore(deps.DB, cfg.Database.QueryTimeout)
	reporter := api.NewErrorReporter(log, metrics.StoreErrors)
	users := service.NewUserService(store, log, service.UserOptions{
		BcryptCost:       cfg.Security.BcryptCost,
		HidePasswordHash: cfg.Security.HidePasswordHash,
		Notifier:         deps.Notifier,
	})

	userHandler := api.NewUserHandler(users, reporter)
	incomeHandler := api.NewIncomeHandler(service.NewIncomeService(store), reporter)
	deductionHandler := api.NewDeductionHandler(service.NewDeductionService(store), reporter)
	homepageHandler := api.NewHomepageHandler(service.NewHomepageService(store), reporter)
	healthHandler := api.NewHealthHandler(store, log)

	// 系统接口不受并发上限影响
	r.GET("/health", healthHandler.Live)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 业务接口
	apiGroup := r.Group("")
	apiGroup.Use(middleware.MaxInFlight(cfg.Server.MaxInFlight, metrics.InFlight))

	writes := []gin.HandlerFunc{}
	if cfg.RateLimit.Enabled {
		writes = append(writes, middleware.RateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
	}

	apiGroup.GET("/users", userHandler.List)
	apiGroup.POST("/add-user", append(writes, userHandler.Add)...)

	apiGroup.GET("/income", incomeHandler.List)
	apiGroup.POST("/add-income", append(writes, incomeHandler.Add)...)

	apiGroup.GET("/deduction", deductionHandler.List)
	apiGroup.POST("/add-deduction", append(writes, deductionHandler.Add)...)

	apiGroup.GET("/homepage", homepageHandler.Get)
	apiGroup.GET("/export/homepage", homepageHandler.Export)

	return r
}

// CORSMiddleware CORS 跨域中间件，默认允许任意来源
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cors.New(cc)
}
