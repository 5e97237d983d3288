package value

import (
	"regexp"
	"strings"
	"unicode"
)

const UnknownLeague = "Unknown League"

const defaultSportEmoji = "🎲"

// Sport результат best-effort классификации события.
type Sport struct {
	Key    string
	Name   string
	League string
	Emoji  string
}

//nolint:gochecknoglobals
var sportEmoji = map[string]string{
	"soccer":           "⚽",
	"americanfootball": "🏈",
	"basketball":       "🏀",
	"baseball":         "⚾",
	"icehockey":        "🏒",
	"tennis":           "🎾",
	"mma":              "🥊",
	"boxing":           "🥊",
	"cricket":          "🏏",
	"aussierules":      "🏉",
	"rugbyleague":      "🏉",
	"rugbyunion":       "🏉",
	"esports":          "🎮",
	"golf":             "⛳",
	"tabletennis":      "🏓",
}

//nolint:gochecknoglobals
var sportNames = map[string]string{
	"soccer":           "Soccer",
	"americanfootball": "American Football",
	"basketball":       "Basketball",
	"baseball":         "Baseball",
	"icehockey":        "Ice Hockey",
	"tennis":           "Tennis",
	"mma":              "MMA",
	"boxing":           "Boxing",
	"cricket":          "Cricket",
	"aussierules":      "Aussie Rules",
	"rugbyleague":      "Rugby League",
	"rugbyunion":       "Rugby Union",
	"esports":          "Esports",
	"golf":             "Golf",
	"tabletennis":      "Table Tennis",
}

// Порядок важен: первый совпавший шаблон выигрывает.
//
//nolint:gochecknoglobals
var leaguePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Serie [ABCD])`),
	regexp.MustCompile(`(?i)(La Liga|Premier League|Bundesliga|Ligue 1|Eredivisie)`),
	regexp.MustCompile(`(?i)(NCAA|NFL|NBA|NHL|MLB)`),
	regexp.MustCompile(`(?i)(A-League|K-League|J-League)`),
	regexp.MustCompile(`(?i)(Big Bash|IPL|CPL|PSL)`),
	regexp.MustCompile(`(?i)(Brazil Série [AB])`),
}

// CanonicalSportKey: всё футбольное сводится к soccer, у остального
// отбрасывается суффикс лиги (basketball_nba -> basketball).
func CanonicalSportKey(sportKey string) string {
	lower := strings.ToLower(sportKey)
	if strings.Contains(lower, "soccer") {
		return "soccer"
	}

	lower, _, _ = strings.Cut(lower, "_")

	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, lower)
}

func SportName(key string) string {
	if name, ok := sportNames[key]; ok {
		return name
	}
	if key == "" {
		return ""
	}

	runes := []rune(key)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// ExtractLeague сначала берёт часть после " - " в названии спорта,
// затем ищет известные лиги в названии спорта и матча.
func ExtractLeague(sportTitle, eventTitle string) string {
	if _, league, ok := strings.Cut(sportTitle, " - "); ok {
		if league = strings.TrimSpace(league); league != "" {
			return league
		}
	}

	for _, text := range []string{sportTitle, eventTitle} {
		for _, pattern := range leaguePatterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				return titleCase(m[1])
			}
		}
	}

	return UnknownLeague
}

func ClassifySport(sportKey, sportTitle, eventTitle string) Sport {
	key := CanonicalSportKey(sportKey)

	emoji, ok := sportEmoji[key]
	if !ok {
		emoji = defaultSportEmoji
	}

	name := SportName(key)

	title := sportTitle
	if title == "" {
		title = name
	}

	return Sport{
		Key:    key,
		Name:   name,
		League: ExtractLeague(title, eventTitle),
		Emoji:  emoji,
	}
}

// titleCase как str.title(): заглавная после любого не-буквенного символа.
// Аббревиатуры (NBA, IPL) оставляем как есть.
func titleCase(s string) string {
	if strings.ToUpper(s) == s {
		return s
	}

	out := []rune(strings.ToLower(s))
	prevLetter := false

	for i, r := range out {
		if unicode.IsLetter(r) {
			if !prevLetter {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}

	return string(out)
}
