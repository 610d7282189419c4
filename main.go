package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"elearn/config"
	"elearn/database"
	contentRoutes "elearn/routers/contentRoutes"
	enrollmentRoutes "elearn/routers/enrollmentRoutes"
	moduleRoutes "elearn/routers/moduleRoutes"
	quizRoutes "elearn/routers/quizRoutes"
	"elearn/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // uploads can carry video files
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded content files
	app.Static("/uploads", config.AppConfig.UploadDir)

	moduleRoutes.SetupModuleRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)

	utils.InitializeOrphanSweeper()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
