// Command webhook_receiver is a stand-in for the GroupMe bots/post endpoint.
// Point GROUPME_API_URL at it to see what the bot would have posted.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/magic-conch/conch-bot/internal/services/groupme"
	"github.com/rs/zerolog"
)

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "webhook_receiver").Logger()

	http.HandleFunc("/v3/bots/post", botPostHandler(logger))
	logger.Info().Str("addr", *addr).Msg("Bot post receiver listening")
	if err := http.ListenAndServe(*addr, nil); err != nil { //nolint:gosec // local development only
		logger.Fatal().Err(err).Msg("Receiver stopped")
	}
}

func botPostHandler(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var msg groupme.BotMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		if msg.BotID == "" {
			// GroupMe rejects posts without a bot.
			http.Error(w, "missing bot_id", http.StatusBadRequest)
			return
		}
		evt := logger.Info().Str("botId", msg.BotID).Str("text", msg.Text)
		for _, a := range msg.Attachments {
			if a.Type == groupme.AttachmentTypeReply {
				evt = evt.Str("replyTo", a.BaseReplyID)
			}
		}
		evt.Msg("Bot message received")
		w.WriteHeader(http.StatusAccepted)
	}
}
