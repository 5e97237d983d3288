package valuebet

import "valuebets/internal/domain/value"

// ConsensusEntry сумма подразумеваемых вероятностей и число котировок.
// Count >= 1 для любой существующей записи.
type ConsensusEntry struct {
	Sum   float64
	Count int
}

func (c ConsensusEntry) Probability() float64 {
	return c.Sum / float64(c.Count)
}

type Consensus map[value.OutcomeKey]ConsensusEntry

// BuildConsensus усредняет 1/price по всем разрешённым букмекерам,
// включая того, чей edge потом считается.
func BuildConsensus(quotes []Quote) Consensus {
	c := make(Consensus)

	for _, q := range quotes {
		entry := c[q.Key]
		entry.Sum += 1 / q.Price
		entry.Count++
		c[q.Key] = entry
	}

	return c
}

// Probability возвращает false, если ключа нет.
func (c Consensus) Probability(key value.OutcomeKey) (float64, bool) {
	entry, ok := c[key]
	if !ok || entry.Count < 1 {
		return 0, false
	}

	return entry.Probability(), true
}
