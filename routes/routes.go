package routes

import (
	"sunsmart/activity"
	"sunsmart/cart"
	"sunsmart/catalog"
	"sunsmart/chat"
	"sunsmart/checkout"
	"sunsmart/orders"
	"sunsmart/ratelim"
	"sunsmart/stream"
	"sunsmart/tickets"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/parts", catalog.GetParts)
	router.GET("/api/parts/:id", catalog.GetPart)
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", cart.GetCart)
	router.POST("/api/cart/items", cart.AddItem)
	router.PATCH("/api/cart/items/:id", cart.UpdateItem)
	router.DELETE("/api/cart/items/:id", cart.RemoveItem)
	router.POST("/api/cart/clear", cart.ClearCart)
}

func AddCheckoutRoutes(router *httprouter.Router) {
	router.GET("/api/checkout", checkout.GetCheckout)
	router.POST("/api/checkout/begin", checkout.BeginCheckout)
	router.POST("/api/checkout/address", checkout.SubmitAddress)
	router.POST("/api/checkout/back", checkout.StepBack)
	router.POST("/api/checkout/payment", checkout.SubmitPayment)
}

func AddTicketRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/tickets", tickets.GetTickets)
	router.POST("/api/tickets", rl.Limit(tickets.CreateTicket))
	router.PATCH("/api/tickets/:id", tickets.UpdateTicketStatus)
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/orders", orders.GetOrders)
	router.POST("/api/orders", rl.Limit(orders.CreateOrder))
	// tracking lives outside /api/orders/:id to keep httprouter's
	// static/param segments from colliding
	router.GET("/api/track", orders.TrackOrder)
	router.GET("/api/orders/:id/invoice", orders.PrintInvoice)
}

func AddChatRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/chat", rl.Limit(chat.Relay))
	router.POST("/api/chat/visit", rl.Limit(chat.RaiseVisit))
}

func AddActivityRoutes(router *httprouter.Router) {
	router.GET("/api/activity", activity.GetActivity)
}

func AddStreamRoutes(router *httprouter.Router, hub *stream.Hub) {
	router.GET("/ws/updates", stream.UpdatesHandler(hub))
}
