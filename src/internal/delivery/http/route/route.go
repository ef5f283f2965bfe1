package route

import (
	"skillswitch-service/src/internal/delivery/http"
	"skillswitch-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                   *fiber.App
	UserController        *http.UserController
	TutorController       *http.TutorController
	SessionController     *http.SessionController
	SafeZoneController    *http.SafeZoneController
	ReviewController      *http.ReviewController
	MarketplaceController *http.MarketplaceController
	AssistantController   *http.AssistantController
	AuthMiddleware        fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupGuestRoute()
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupGuestRoute() {
	c.App.Post("/auth/v1/register", c.UserController.Register)
	c.App.Post("/auth/v1/login", c.UserController.Login)
	c.App.Post("/auth/v1/provider", c.UserController.LoginWithProvider)
	c.App.Get("/auth/v1/session", c.UserController.Session)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)
	c.App.Post("/auth/v1/logout", c.UserController.Logout)

	c.App.Get("/users/v1/profile", c.UserController.GetProfile)
	c.App.Put("/users/v1/profile", c.UserController.UpdateProfile)
	c.App.Post("/users/v1/verify", c.UserController.Verify)
	c.App.Get("/users/v1/transactions", c.UserController.Transactions)
	c.App.Get("/users/v1/suggestions", c.UserController.Suggestions)

	c.App.Get("/tutors/v1", c.TutorController.List)
	c.App.Post("/tutors/v1/match", c.TutorController.Match)

	c.App.Post("/sessions/v1", c.SessionController.Create)
	c.App.Get("/sessions/v1", c.SessionController.List)
	c.App.Get("/sessions/v1/pending", c.SessionController.Pending)
	c.App.Get("/sessions/v1/pricing", c.SessionController.Pricing)
	c.App.Get("/sessions/v1/:id", c.SessionController.Get)
	c.App.Post("/sessions/v1/:id/accept", c.SessionController.Accept)
	c.App.Post("/sessions/v1/:id/reject", c.SessionController.Reject)
	c.App.Post("/sessions/v1/:id/complete", c.SessionController.Complete)

	c.App.Get("/safezones/v1", c.SafeZoneController.List)
	c.App.Post("/safezones/v1/check", c.SafeZoneController.Check)

	c.App.Post("/reviews/v1", c.ReviewController.Create)
	c.App.Get("/reviews/v1/users/:id", c.ReviewController.ListForUser)
	c.App.Post("/reviews/v1/:id/helpful", c.ReviewController.MarkHelpful)

	c.App.Get("/marketplace/v1/resources", c.MarketplaceController.ListResources)
	c.App.Post("/marketplace/v1/resources/:id/download", c.MarketplaceController.Download)
	c.App.Get("/marketplace/v1/tools", c.MarketplaceController.ListTools)
	c.App.Post("/marketplace/v1/tools/:id/click", c.MarketplaceController.ClickTool)

	c.App.Post("/assistant/v1/chat", c.AssistantController.Chat)
}
