package config

import "time"

type Odds struct {
	APIKey       string        `env:"ODDS_API_KEY,required,notEmpty" json:"-"`
	BaseURL      string        `env:"ODDS_API_URL" envDefault:"https://api.the-odds-api.com"`
	Regions      string        `env:"ODDS_REGIONS" envDefault:"au,us,uk"`
	Markets      string        `env:"ODDS_MARKETS" envDefault:"h2h,spreads,totals"`
	FetchTimeout time.Duration `env:"ODDS_FETCH_TIMEOUT" envDefault:"25s"`
	LogMaxLen    int           `env:"ODDS_LOG_MAX_LEN" envDefault:"2048"`
}
