package http

import (
	"github.com/go-chi/chi/v5"

	exportspage "tecnoreparos/frontend/exports"
	"tecnoreparos/frontend/login"
	"tecnoreparos/frontend/orders"
	"tecnoreparos/frontend/settings"
	"tecnoreparos/frontend/stock"
)

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler(s.Themes))
	s.router.Post("/login", login.CreateLoginHandler(s.Auth, s.SessionCache, s.Monitors, s.IdleCfg))
	s.router.Post("/logout", login.LogoutHandler(s.SessionCache, s.Monitors))
}

// RegisterFrontendRoutes registers authenticated routes.
func (s *Server) RegisterFrontendRoutes(r chi.Router) chi.Router {
	r.Get("/orders", orders.OrdersPageQueryHandler(s.Orders, s.Themes))
	r.Post("/orders", orders.CreateOrderCommandHandler(s.Orders, s.Audit))
	r.Post("/orders/{id}", orders.UpdateOrderCommandHandler(s.Orders, s.Audit))
	r.Post("/orders/{id}/delete", orders.DeleteOrderCommandHandler(s.Orders, s.Audit))
	r.Post("/orders/{id}/images", orders.AttachImagesCommandHandler(s.Orders, s.Audit))
	r.Post("/orders/{id}/images/{index}/delete", orders.RemoveImageCommandHandler(s.Orders, s.Audit))
	r.Get("/orders/{id}/ticket.pdf", orders.TicketPDFQueryHandler(s.Orders))

	r.Get("/stock", stock.StockPageQueryHandler(s.Stock, s.Themes))
	r.Post("/stock", stock.CreateItemCommandHandler(s.Stock, s.Audit))
	r.Post("/stock/{id}", stock.UpdateItemCommandHandler(s.Stock, s.Audit))
	r.Post("/stock/{id}/delete", stock.DeleteItemCommandHandler(s.Stock, s.Audit))

	r.Post("/settings/theme", settings.ThemeToggleHandler(s.Themes))

	r.Get("/exports/orders.csv", exportspage.OrdersExportCSVHandler(s.Orders))
	r.Get("/exports/stock.csv", exportspage.StockExportCSVHandler(s.Stock))

	r.Get("/api/session/idle", s.IdleStatusHandler())
	r.Post("/api/session/keepalive", s.KeepAliveHandler())

	return r
}
