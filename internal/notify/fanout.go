package notify

import (
	"log"

	"go-autoapply/internal/models"
)

// Channel is one delivery mechanism for the day's matches.
type Channel interface {
	Name() string
	Deliver(matches []models.ScoredMatch) error
}

// Fanout pushes the matches through every channel. A failing channel is
// logged and skipped; the return value is how many channels delivered,
// so the caller knows whether anyone actually got the word.
func Fanout(channels []Channel, matches []models.ScoredMatch) int {
	delivered := 0
	for _, ch := range channels {
		if err := ch.Deliver(matches); err != nil {
			log.Printf("⚠️ %s delivery failed: %v", ch.Name(), err)
			continue
		}
		log.Printf("📨 %s delivered %d jobs", ch.Name(), len(matches))
		delivered++
	}
	return delivered
}
