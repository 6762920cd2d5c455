// Package http exposes the marketplace over a JSON API. Handlers translate
// requests into commands and queries, role middleware gates each route, and
// every response uses the common success/error envelope.
package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/application/usecases/queries"
	"urbanmart/internal/core/domain/model/user"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	Checkout               commands.CheckoutCommandHandler
	UpdateOrderStatus      commands.UpdateOrderStatusCommandHandler
	AddToCart              commands.AddToCartCommandHandler
	UpdateCartItem         commands.UpdateCartItemCommandHandler
	RemoveCartItem         commands.RemoveCartItemCommandHandler
	RequestDelivery        commands.RequestDeliveryCommandHandler
	ResolveDeliveryRequest commands.ResolveDeliveryRequestCommandHandler
	UpdateDeliveryStatus   commands.UpdateDeliveryStatusCommandHandler
	CreateHiringRequest    commands.CreateHiringRequestCommandHandler
	ResolveHiringRequest   commands.ResolveHiringRequestCommandHandler
	CreateOrganization     commands.CreateOrganizationCommandHandler
	RegisterUser           commands.RegisterUserCommandHandler

	Login                 queries.LoginQueryHandler
	GetCart               queries.GetCartQueryHandler
	GetOrder              queries.GetOrderQueryHandler
	GetOrderStatusHistory queries.GetOrderStatusHistoryQueryHandler
	GetCustomerOrders     queries.GetCustomerOrdersQueryHandler
	GetMerchantOrders     queries.GetMerchantOrdersQueryHandler
	GetProduct            queries.GetProductQueryHandler
	GetAdminStats         queries.GetAdminStatsQueryHandler
}

// Server wires HTTP routes to application use cases.
type Server struct {
	handlers Handlers
	auth     *Auth
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers, auth *Auth) *Server {
	return &Server{handlers: handlers, auth: auth}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public surface.
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/products/:id", s.GetProduct)

	// Authenticated surface.
	authed := api.Group("", s.auth.Middleware())

	customer := authed.Group("", RequireRoles(user.Customer))
	customer.GET("/cart", s.GetCart)
	customer.POST("/cart/items", s.AddToCart)
	customer.PATCH("/cart/items/:productId", s.UpdateCartItem)
	customer.DELETE("/cart/items/:productId", s.RemoveCartItem)
	customer.POST("/orders", s.Checkout)
	customer.GET("/orders", s.ListCustomerOrders)

	authed.GET("/orders/:id", s.GetOrder)
	authed.GET("/orders/:id/status-history", s.GetOrderStatusHistory)

	admin := authed.Group("", RequireRoles(user.Admin))
	admin.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	admin.GET("/admin/stats", s.GetAdminStats)

	merchant := authed.Group("/merchant", RequireRoles(user.Merchant))
	merchant.GET("/orders", s.ListMerchantOrders)
	merchant.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	authed.POST("/delivery/assign", s.RequestDelivery, RequireRoles(user.Merchant))
	authed.PATCH("/delivery/orders/:assignmentId/status", s.UpdateDeliveryStatus,
		RequireRoles(user.Delivery))

	deliveryOrg := authed.Group("/delivery-org", RequireRoles(user.Delivery))
	deliveryOrg.POST("", s.CreateOrganization)
	deliveryOrg.PATCH("/requests/delivery/:id", s.ResolveDeliveryRequest)
	deliveryOrg.POST("/members/invite", s.InviteMember)
	deliveryOrg.POST("/requests/apply", s.ApplyToOrganization)
	deliveryOrg.PATCH("/requests/hiring/:id", s.ResolveHiringRequest)
}
