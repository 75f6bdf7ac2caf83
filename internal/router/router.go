package router

import (
	"github.com/stpnv0/RentalShop/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Health(c *ginext.Context)

	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)

	CreateItem(c *ginext.Context)
	GetItem(c *ginext.Context)
	ListItems(c *ginext.Context)
	UpdateItem(c *ginext.Context)
	DeleteItem(c *ginext.Context)
	ItemAvailability(c *ginext.Context)
	ListCategories(c *ginext.Context)

	CreateRental(c *ginext.Context)
	ListRentals(c *ginext.Context)
	GetRental(c *ginext.Context)
	UpdateRentalStatus(c *ginext.Context)

	CreatePayment(c *ginext.Context)
	GetPayment(c *ginext.Context)

	DashboardStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", h.Health)

	actor := middleware.Actor()

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)

		// Catalog
		api.GET("/items", h.ListItems)
		api.POST("/items", actor, h.CreateItem)
		api.GET("/items/:id", h.GetItem)
		api.PUT("/items/:id", actor, h.UpdateItem)
		api.DELETE("/items/:id", actor, h.DeleteItem)
		api.GET("/items/:id/availability", h.ItemAvailability)
		api.GET("/categories", h.ListCategories)

		// Rentals
		api.POST("/rentals", actor, h.CreateRental)
		api.GET("/rentals", actor, h.ListRentals)
		api.GET("/rentals/:id", actor, h.GetRental)
		api.PUT("/rentals/:id/status", actor, h.UpdateRentalStatus)

		// Payments
		api.POST("/payments", actor, h.CreatePayment)
		api.GET("/payments/:id", actor, h.GetPayment)

		api.GET("/dashboard/stats", actor, h.DashboardStats)
	}

	return router
}
