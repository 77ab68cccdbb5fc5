package validate

import "github.com/jukuhub/studyquest/internal/domain"

var knownCounters = map[string]struct{}{
	domain.CounterHomework:      {},
	domain.CounterWordTest:      {},
	domain.CounterWordTestScore: {},
	domain.CounterSelfStudy:     {},
	domain.CounterStudyMinutes:  {},
	domain.CounterRewards:       {},
}

// IsCounterName reports whether name is a tracked student counter.
func IsCounterName(name string) bool {
	_, ok := knownCounters[name]
	return ok
}
