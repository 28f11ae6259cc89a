package api

import (
	"Carrytome/internal/config"
	"Carrytome/internal/views"

	"github.com/go-chi/chi/v5"
)

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Config    *config.Config
	SecretKey string // токен бота; им Telegram подписывает initData
	MyOrders  *views.View
	Flights   *views.View
	Cargo     *views.View
}

// apiDeps - зависимости пакета, выставляются один раз в SetupRoutes.
var apiDeps ApiDependencies

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r *chi.Mux, deps ApiDependencies) {
	apiDeps = deps

	// Публичные маршруты. Релей проверяет initData сам, полем формы.
	r.Group(func(r chi.Router) {
		r.Get("/api/client-config", GetClientConfig)
		r.Post("/api/telegram/upload", UploadTelegramHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(deps.SecretKey))

		// --- Заказы пользователя ---
		r.Get("/api/user/orders", GetOrders)
		r.Post("/api/user/orders", CreateUserOrder)
		r.Delete("/api/user/orders", ClearUserOrders)
		r.Get("/api/user/orders/export", ExportOrdersHandler)
		r.Get("/api/user/order/{id}", GetOrderDetails)
		r.Patch("/api/user/order/{id}", UpdateUserOrder)
		r.Delete("/api/user/order/{id}", DeleteUserOrder)
		r.Get("/api/user/order/{id}/qr", OrderQRHandler)

		// --- Объявления путешественников ---
		r.Get("/api/traveler/listings", GetTravelerListings)
		r.Post("/api/traveler/listings", CreateTravelerListing)

		// --- Витрины ---
		r.Get("/api/flights", GetRegisteredFlights)
		r.Get("/api/cargo", GetRegisteredCargo)

		// --- Маршруты и форма груза ---
		r.Get("/api/route/{kind}", GetRoute)
		r.Post("/api/route/{kind}", SaveRouteHandler)
		r.Delete("/api/route/{kind}", ClearRouteHandler)
		r.Get("/api/cargo-form", GetCargoForm)
		r.Post("/api/cargo-form", SaveCargoForm)

		// --- KYC ---
		r.Get("/api/user/kyc", GetKycState)
		r.Post("/api/user/kyc", SetKycState)
	})
}
