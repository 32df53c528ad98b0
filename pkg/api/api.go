// Package api exposes vault generation over HTTP. Validation, body-size
// limits and rate limiting all live here: the generation core trusts its
// input and never sees an unvalidated request.
package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/vaultgen/vaultgen/pkg/export"
	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

// Request body ceiling and per-client rate limits.
const (
	maxBodyBytes      = 1 << 20
	generatePerMinute = 10
	infoPerMinute     = 60
)

// NewApp builds the fiber application with all routes registered.
func NewApp(logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             maxBodyBytes,
		DisableStartupMessage: true,
	})

	v := &VaultAPI{Router: app.Group("/api/vault"), Logger: logger}
	v.Register()

	return app
}

// VaultAPI registers the generation and info endpoints on a router.
type VaultAPI struct {
	Router fiber.Router
	Logger *zap.Logger
}

func (api *VaultAPI) Register() {
	generateLimit := limiter.New(limiter.Config{
		Max:        generatePerMinute,
		Expiration: time.Minute,
	})
	infoLimit := limiter.New(limiter.Config{
		Max:        infoPerMinute,
		Expiration: time.Minute,
	})

	api.Router.Post("/generate", generateLimit, func(c *fiber.Ctx) error {
		var opts vault.Options
		if err := c.BodyParser(&opts); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := opts.Validate(); err != nil {
			return badRequest(c, err.Error())
		}

		ctx := ctxzap.ToContext(context.Background(), api.Logger)
		result, err := export.Generate(ctx, opts)
		if err != nil {
			// Internals are logged by the generator; the caller gets a
			// generic message only.
			api.Logger.Error("generate request failed",
				zap.String("format", string(opts.VaultFormat)),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "generation failed",
			})
		}

		c.Set(fiber.HeaderContentType, result.ContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
		return c.SendString(result.Data)
	})

	api.Router.Get("/formats", infoLimit, func(c *fiber.Ctx) error {
		formats := make([]fiber.Map, 0, len(vault.Formats()))
		for _, f := range vault.Formats() {
			formats = append(formats, fiber.Map{
				"id":          string(f),
				"contentType": f.ContentType(),
				"filename":    f.Filename(),
			})
		}
		return c.JSON(fiber.Map{"formats": formats})
	})

	api.Router.Get("/locales", infoLimit, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"locales": locale.Supported()})
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
