package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mcirstea/storefront/internal/adapter/config"
	"github.com/mcirstea/storefront/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	userHandler *UserHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", userHandler.RegisterUser)
			auth.POST("/login", userHandler.LoginUser)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListMyOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Admin-only operations live under /admin; the role itself is
		// checked by the service authority, not by routing.
		admin := api.Group("/admin")
		{
			admin.Use(authCheck(tokenService))
			admin.GET("/orders", orderHandler.ListAllOrders)
			admin.PUT("/orders/:id", orderHandler.UpdateOrderStatus)
			admin.DELETE("/users/:id", userHandler.DeleteUser)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
