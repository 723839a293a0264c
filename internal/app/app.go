package app

import (
	"fmt"
	"net/http"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/magic-conch/conch-bot/internal/conch"
	"github.com/magic-conch/conch-bot/internal/config"
	"github.com/magic-conch/conch-bot/internal/controllers/webhook"
	"github.com/magic-conch/conch-bot/internal/services/groupme"
	"github.com/magic-conch/conch-bot/internal/services/redelivery"
	"github.com/rs/zerolog"
)

// GroupMe callbacks are small; anything near this is not a chat message.
const maxBodySize = 1 << 20

func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	if settings.GroupMeBotID == "" {
		logger.Warn().Msg("groupme_bot_id is not set; replies will be rejected by GroupMe and the bot's own messages will not be recognized")
	}

	sender := groupme.NewSender(&http.Client{Timeout: settings.GroupMeTimeout}, settings.GroupMeAPIURL)

	chooser, err := conch.NewPhraseChooser(conch.DefaultPhrases(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create phrase chooser: %w", err)
	}

	filter := redelivery.NewFilter(settings.RedeliveryWindow)

	return CreateFiberApp(logger, settings, sender, chooser, filter), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger,
	settings *config.Settings,
	sender webhook.MessageSender,
	chooser webhook.ReplyChooser,
	filter webhook.DeliveryFilter,
) *fiber.App {
	logger.Info().Msg("Starting Magic Conch bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
		BodyLimit:             maxBodySize,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	webhookController := webhook.NewWebhookController(settings, sender, chooser, filter)
	logger.Info().Msg("Registering routes...")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	app.Get("/", webhookController.Greet)
	app.Post("/", webhookController.HandleMessage)

	return app
}
