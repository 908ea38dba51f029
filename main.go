// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"coursepay_backend/internals/configs"
	database "coursepay_backend/internals/databases"
	helper "coursepay_backend/internals/helpers"
	"coursepay_backend/internals/middlewares"
	routes "coursepay_backend/internals/route"
	userSeeds "coursepay_backend/internals/seeds/users"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "coursepay_backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal server error"
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
				msg = fe.Message
			}
			return helper.JsonError(c, code, msg)
		},
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.Migrate()
	if err := userSeeds.EnsureSuperadmin(database.DB); err != nil {
		log.Fatalf("❌ superadmin seed failed: %v", err)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(); err != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "database unreachable")
		}
		return helper.JsonOK(c, "ok", fiber.Map{"status": "healthy"})
	})

	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "5000")

	go func() {
		log.Printf("🚀 listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("⏳ shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown err: %v", err)
	}
	log.Println("✅ bye.")
}
