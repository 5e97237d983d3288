package entity

import (
	"math"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// RawEvent событие в том виде, в каком его отдаёт источник коэффициентов.
type RawEvent struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime string      `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

type Bookmaker struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update"`
	Markets    []Market `json:"markets"`
}

type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

type Outcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// UnmarshalJSON нечисловая цена превращается в NaN, а не роняет весь ответ.
// Такой исход потом отсеивается при нормализации.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string `json:"name"`
		Price any    `json:"price"`
		Point any    `json:"point"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Name = raw.Name
	o.Price = number(raw.Price)
	o.Point = nil

	if raw.Point != nil {
		point := number(raw.Point)
		o.Point = &point
	}

	return nil
}

func number(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}

	return math.NaN()
}

// Match подпись "Home vs Away" с заглушками для пустых имён.
func (e RawEvent) Match() string {
	home, away := e.HomeTeam, e.AwayTeam
	if home == "" {
		home = "Home"
	}
	if away == "" {
		away = "Away"
	}

	return home + " vs " + away
}

// Name название для показа: title, иначе key.
func (b Bookmaker) Name() string {
	if b.Title != "" {
		return b.Title
	}
	if b.Key != "" {
		return b.Key
	}

	return "Unknown Bookmaker"
}
