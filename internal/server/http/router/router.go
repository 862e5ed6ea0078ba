package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/server/http/handlers"
	"github.com/arzonstar/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, validator middleware.InitDataValidator, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.ValidateInitData(validator))

	userHandler := handlers.NewUserHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	depositHandler := handlers.NewDepositHandler(facade)
	referralHandler := handlers.NewReferralHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	cardHandler := handlers.NewCardHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	telegramHandler := handlers.NewTelegramHandler(facade)

	api := engine.Group("/api")

	api.GET("/products", productHandler.List)
	api.POST("/products", productHandler.Create)
	api.PATCH("/products", productHandler.Update)
	api.DELETE("/products", productHandler.Delete)

	api.POST("/orders", orderHandler.Place)
	api.GET("/orders", orderHandler.List)

	api.GET("/balance", balanceHandler.Get)
	api.POST("/balance", balanceHandler.Adjust)

	api.POST("/deposits", depositHandler.Create)
	api.GET("/deposits", depositHandler.List)
	api.PATCH("/deposits", depositHandler.Resolve)

	api.POST("/referrals", referralHandler.Redeem)
	api.GET("/referrals", referralHandler.Stats)

	api.POST("/users", userHandler.Sync)
	api.GET("/users", userHandler.Get)

	api.GET("/user-stats", statsHandler.UserStats)
	api.GET("/public-stats", statsHandler.PublicStats)
	api.GET("/top-users", statsHandler.TopUsers)

	admin := api.Group("/admin")
	admin.GET("/orders", orderHandler.AdminList)
	admin.PATCH("/orders", orderHandler.UpdateStatus)
	admin.GET("/stats", statsHandler.AdminStats)
	admin.GET("/users", userHandler.AdminList)
	admin.GET("/notifications", notificationHandler.List)
	admin.POST("/notifications", notificationHandler.Create)
	admin.PATCH("/notifications", notificationHandler.MarkSent)
	admin.GET("/cards", cardHandler.List)
	admin.POST("/cards", cardHandler.Create)
	admin.PATCH("/cards", cardHandler.SetActive)
	admin.DELETE("/cards", cardHandler.Delete)

	telegram := api.Group("/telegram")
	telegram.POST("/send", telegramHandler.Send)
	telegram.POST("/check-subscription", telegramHandler.CheckSubscription)

	return engine
}
