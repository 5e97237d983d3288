package valuebet

import (
	"slices"
	"strings"
	"sync"
)

var DefaultBookmakers = []string{ //nolint:gochecknoglobals
	"sportsbet", "bet365", "ladbrokes", "tabtouch", "neds",
	"pointsbet", "dabble", "betfair", "tab",
}

// AllowList список подстрок, по которым отбираются букмекеры.
// Меняется командами бота, цикл берёт снимок через Snapshot.
type AllowList struct {
	mu  sync.Mutex
	ids []string
}

func NewAllowList(ids ...string) *AllowList {
	l := &AllowList{}
	l.Set(ids)
	return l
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Add добавляет идентификатор (если ещё нет). Возвращает false для дубля или пустой строки.
func (l *AllowList) Add(id string) bool {
	id = normalizeID(id)
	if id == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if slices.Contains(l.ids, id) {
		return false
	}

	l.ids = append(l.ids, id)
	return true
}

// Remove удаляет идентификатор, сохраняя порядок
func (l *AllowList) Remove(id string) bool {
	id = normalizeID(id)

	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.Index(l.ids, id)
	if i < 0 {
		return false
	}

	l.ids = slices.Delete(l.ids, i, i+1)
	return true
}

// Set заменяет весь список
func (l *AllowList) Set(ids []string) {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		id = normalizeID(id)
		if id != "" && !slices.Contains(next, id) {
			next = append(next, id)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ids = next
}

func (l *AllowList) Has(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Contains(l.ids, normalizeID(id))
}

// Snapshot возвращает копию, чтобы избежать гонок
func (l *AllowList) Snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.ids)
}

func (l *AllowList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}

// Allowed: название содержит любой идентификатор без учёта регистра.
func Allowed(title string, ids []string) bool {
	title = strings.ToLower(title)
	for _, id := range ids {
		if strings.Contains(title, id) {
			return true
		}
	}
	return false
}
