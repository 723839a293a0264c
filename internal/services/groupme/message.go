package groupme

// AttachmentTypeReply marks a message as a reply to an earlier one.
const AttachmentTypeReply = "reply"

// BotMessage is the body of a bots/post request.
type BotMessage struct {
	BotID       string       `json:"bot_id"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is a GroupMe message attachment. Only reply attachments are sent by the bot.
type Attachment struct {
	Type        string `json:"type"`
	BaseReplyID string `json:"base_reply_id,omitempty"`
}

// NewMessage builds a plain bot message with no attachments.
func NewMessage(botID, text string) *BotMessage {
	return &BotMessage{
		BotID:       botID,
		Text:        text,
		Attachments: []Attachment{},
	}
}

// NewReply builds a bot message threaded as a reply to baseMessageID.
// GroupMe answers 400 if baseMessageID does not exist.
func NewReply(botID, text, baseMessageID string) *BotMessage {
	return &BotMessage{
		BotID: botID,
		Text:  text,
		Attachments: []Attachment{
			{Type: AttachmentTypeReply, BaseReplyID: baseMessageID},
		},
	}
}
