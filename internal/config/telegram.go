package config

// Bot настройки Telegram-бота: команды и каналы рассылки.
// Нулевой chat id означает, что канал отключён.
type Bot struct {
	Token       string `env:"BOT_TOKEN,required,notEmpty" json:"-"`
	AdminID     int64  `env:"BOT_ADMIN_ID"`
	ChatBest    int64  `env:"TG_CHAT_BEST"`
	ChatQuick   int64  `env:"TG_CHAT_QUICK"`
	ChatLong    int64  `env:"TG_CHAT_LONG"`
	ChatValue   int64  `env:"TG_CHAT_VALUE"`
	StartupPing bool   `env:"BOT_STARTUP_PING" envDefault:"false"`
}
