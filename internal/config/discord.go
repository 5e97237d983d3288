package config

// Discord опциональный второй канал уведомлений.
type Discord struct {
	Token        string `env:"DISCORD_BOT_TOKEN" json:"-"`
	ChannelBest  string `env:"DISCORD_CHANNEL_ID_BEST"`
	ChannelQuick string `env:"DISCORD_CHANNEL_ID_QUICK"`
	ChannelLong  string `env:"DISCORD_CHANNEL_ID_LONG"`
	ChannelValue string `env:"VALUE_BETS_CHANNEL_ID"`
}

func (d Discord) Enabled() bool {
	return d.Token != ""
}
