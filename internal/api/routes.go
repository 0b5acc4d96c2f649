package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/change-password", handler.ChangePassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.CreateCycle)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Post("/:id/dismiss", handler.DismissNotification)

	medicines := api.Group("/medicines", handler.AuthRequired)
	medicines.Get("", handler.ListMedicines)
	medicines.Post("", handler.CreateMedicine)
}
