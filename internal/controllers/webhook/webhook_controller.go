package webhook

import (
	"context"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/magic-conch/conch-bot/internal/conch"
	"github.com/magic-conch/conch-bot/internal/config"
	"github.com/magic-conch/conch-bot/internal/services/groupme"
	"github.com/rs/zerolog"
)

type MessageSender interface {
	SendMessage(ctx context.Context, msg *groupme.BotMessage) error
}

type ReplyChooser interface {
	Choose() string
}

type DeliveryFilter interface {
	FirstDelivery(messageID string) bool
}

// WebhookController answers GroupMe bot callbacks on behalf of the Magic Conch.
type WebhookController struct {
	botID         string
	threadReplies bool
	sender        MessageSender
	chooser       ReplyChooser
	filter        DeliveryFilter
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(settings *config.Settings, sender MessageSender, chooser ReplyChooser, filter DeliveryFilter) *WebhookController {
	return &WebhookController{
		botID:         settings.GroupMeBotID,
		threadReplies: settings.ThreadReplies(),
		sender:        sender,
		chooser:       chooser,
		filter:        filter,
	}
}

// Greet responds to GET requests with the conch's greeting.
func (w *WebhookController) Greet(c *fiber.Ctx) error {
	return c.SendString(conch.Greeting)
}

// HandleMessage processes a GroupMe bot callback. Messages that start with the trigger prefix
// get a random conch answer posted back to the group. The callback is acknowledged with 200
// whether or not the answer could be delivered.
func (w *WebhookController) HandleMessage(c *fiber.Ctx) error {
	msg, err := conch.ParseInboundMessage(c.Body())
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Malformed payload",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	// Never answer ourselves, or every answer would trigger another.
	if w.botID != "" && msg.SenderID == w.botID {
		return c.SendStatus(fiber.StatusOK)
	}

	if !conch.IsTriggered(msg.Text) {
		return c.SendStatus(fiber.StatusOK)
	}

	logger := zerolog.Ctx(c.UserContext()).With().
		Str("dispatchId", uuid.NewString()).
		Str("messageId", msg.MessageID).
		Logger()

	if !w.filter.FirstDelivery(msg.MessageID) {
		logger.Debug().Msg("Ignoring redelivered message")
		return c.SendStatus(fiber.StatusOK)
	}

	reply := w.chooser.Choose()
	var out *groupme.BotMessage
	if w.threadReplies {
		out = groupme.NewReply(w.botID, reply, msg.MessageID)
	} else {
		out = groupme.NewMessage(w.botID, reply)
	}

	if err := w.sender.SendMessage(c.Context(), out); err != nil {
		logger.Error().Err(err).Msg("Failed to post conch reply")
		return c.SendStatus(fiber.StatusOK)
	}

	logger.Info().Str("reply", reply).Msg("Posted conch reply")
	return c.SendStatus(fiber.StatusOK)
}
