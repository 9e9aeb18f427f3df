package schedule

import "time"

// DefaultSlotMinutes is the trial duration offered when an empty
// cell is clicked; the real duration is snapshotted from the chosen
// service once the appointment is persisted.
const DefaultSlotMinutes = 30

type SlotCandidate struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CandidateForCell returns the proposed interval for an empty-slot
// click on the given day x hour cell.
func CandidateForCell(day time.Time, hour int) SlotCandidate {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	return SlotCandidate{
		Start: start,
		End:   start.Add(DefaultSlotMinutes * time.Minute),
	}
}
