// Productr is the backend of the product catalog application
package main

import (
	"fmt"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/productr/server/config"
	"github.com/productr/server/connect"
	"github.com/productr/server/controllers"
	"github.com/productr/server/services"
	"github.com/productr/server/utils"
)

var (
	env  config.Env
	conn connect.Connector
)

func init() {
	env.Load()

	conn.InitDatabase(&env)
	utils.CheckForMigrations(&conn, &env)

	conn.InitRatelimiter(&env)
	conn.InitRedis(&env)
}

func main() {
	app := fiber.New()
	if config.GetDevEnv(&env) == config.Dev {
		app.Use(fiberLogger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowOrigins:     env.FrontendHostname,
		AllowCredentials: true,
		AllowMethods:     "*",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusTooManyRequests)
		},
		SkipFailedRequests:     false,
		SkipSuccessfulRequests: false,
		LimiterMiddleware:      limiter.SlidingWindow{},
		Storage:                conn.Ratelimter,
	}))

	authC := controllers.Auth{
		Service: &services.Auth{
			Challenges: &services.Challenge{Conn: &conn},
			Users:      &services.User{Conn: &conn},
			Dispatch:   &utils.Email{Env: &env},
			Validity:   env.OTPExpires,
		},
	}
	productC := controllers.Product{
		Service: &services.Product{Conn: &conn},
	}
	systemC := controllers.System{
		Conn: &conn,
	}

	app.Get("/", systemC.Health)

	app.Route("/api/auth", func(router fiber.Router) {
		router.Post("/send-otp", authC.SendOTP)
		router.Post("/verify-otp", authC.VerifyOTP)
	})

	app.Route("/api/products", func(router fiber.Router) {
		router.Post("/", productC.Add)
		router.Get("/", productC.GetAll)
		router.Get("/:id", productC.Get)
		router.Put("/:id", productC.Update)
		router.Delete("/:id", productC.Delete)
		router.Patch("/publish/:id", productC.TogglePublish)
	})

	app.Route("/monitor", func(router fiber.Router) {
		router.Get("/metrics", monitor.New(monitor.Config{
			Title: "Monitor Productr",
		}))
	})

	logger.Errorf(app.Listen(fmt.Sprintf(":%s", env.Port)))
}
