package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/joho/godotenv"

	"github.com/citasya/citas-api/auth"
	"github.com/citasya/citas-api/cron"
	"github.com/citasya/citas-api/db"
	"github.com/citasya/citas-api/graph"
	"github.com/citasya/citas-api/redis"
	"github.com/citasya/citas-api/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	database, err := db.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(database)

	if err := db.Migrate(database); err != nil {
		log.Fatal(err)
	}

	st := store.New(database)
	schema := graphql.MustParseSchema(graph.Schema, &graph.Resolver{Store: st})

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	app.Post("/graphql", auth.Optional(), graph.Handler(schema))

	// Catch-all for unmatched routes.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	})

	// Reminders only run when Redis is configured.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := redis.Connect(addr)
		if err != nil {
			log.Fatal(err)
		}
		defer rdb.Close()

		scheduler, err := cron.StartReminders(st, rdb)
		if err != nil {
			log.Fatal(err)
		}
		defer scheduler.Stop()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatal("Server stopped: ", err)
		}
	}()
	log.Println("Server is running on port " + port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Println("Warning: shutdown error:", err)
	}
}
