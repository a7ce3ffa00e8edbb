// Package middleware holds the Fiber middleware stack shared by every route.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

// CORS allows credentialed requests from the given origins with any method
// and header.
func CORS(origins []string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	})
}

// AccessLog writes one line per request through logrus at info level.
func AccessLog() fiber.Handler {
	return logger.New(logger.Config{
		Format: "${status} ${method} ${path} ${latency}\n",
		Output: log.StandardLogger().WriterLevel(log.InfoLevel),
	})
}

// Recover turns handler panics into 500 responses and logs the value.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.WithFields(log.Fields{
				"method": c.Method(),
				"path":   c.Path(),
				"panic":  e,
			}).Error("Recovered from panic")
		},
	})
}

// Use installs the full stack on app in the order requests should see it.
func Use(app *fiber.App, origins []string) {
	app.Use(Recover())
	app.Use(AccessLog())
	app.Use(CORS(origins))
}
