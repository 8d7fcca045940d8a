package timeline

import (
	"github.com/example/roomline/internal/models"
)

// classifyState tracks which temporal bucket the next slot receives.
type classifyState int

const (
	awaitingNow classifyState = iota
	awaitingUpcoming
	inLater
)

// classify assigns each slot a temporal bucket in chronological order: the
// first slot is tagged "now", the second "upcoming", every other slot
// "later". The assignment is positional and ignores slot status entirely.
// Only the "now" slot gets minutes_left, measured against the unrounded
// current time.
func classify(slots []models.Slot, nowMinutes int) ([]models.Slot, error) {
	state := awaitingNow
	for i := range slots {
		switch state {
		case awaitingNow:
			slots[i].TimePeriod = models.PeriodNow
			end, err := ToMinutes(slots[i].EndTime)
			if err != nil {
				return nil, err
			}
			left := end - nowMinutes
			slots[i].MinutesLeft = &left
			state = awaitingUpcoming
		case awaitingUpcoming:
			slots[i].TimePeriod = models.PeriodUpcoming
			slots[i].MinutesLeft = nil
			state = inLater
		default:
			slots[i].TimePeriod = models.PeriodLater
			slots[i].MinutesLeft = nil
		}
	}
	return slots, nil
}
