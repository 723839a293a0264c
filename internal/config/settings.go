package config

import "time"

const (
	// DefaultGroupMeAPIURL is the GroupMe endpoint bots post messages to.
	DefaultGroupMeAPIURL = "https://api.groupme.com/v3/bots/post"

	defaultPort           = 8080
	defaultMonPort        = 8888
	defaultLogLevel       = "info"
	defaultServiceName    = "conch-bot"
	defaultGroupMeTimeout = 5 * time.Second
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// GroupMeBotID identifies the bot both when posting and when ignoring its own messages.
	GroupMeBotID   string        `env:"groupme_bot_id"`
	GroupMeAPIURL  string        `env:"GROUPME_API_URL"`
	GroupMeTimeout time.Duration `env:"GROUPME_TIMEOUT"`

	// DisableReplyThreading posts conch answers as plain messages instead of replies.
	DisableReplyThreading bool `env:"DISABLE_REPLY_THREADING"`
	// RedeliveryWindow is how long a triggering message ID is remembered. Zero turns it off.
	RedeliveryWindow time.Duration `env:"REDELIVERY_WINDOW"`
}

// SetDefaults fills in any zero valued settings that have a sensible default.
func (s *Settings) SetDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.GroupMeAPIURL == "" {
		s.GroupMeAPIURL = DefaultGroupMeAPIURL
	}
	if s.GroupMeTimeout <= 0 {
		s.GroupMeTimeout = defaultGroupMeTimeout
	}
}

// ThreadReplies reports whether answers should be posted as replies to the asking message.
func (s *Settings) ThreadReplies() bool {
	return !s.DisableReplyThreading
}
