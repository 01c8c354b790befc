package types

// LogEntry records that an item was done on a specific calendar date.
// Date carries no time component; CreatedAt is a full timestamp used only
// for insertion-order tie-breaking, never for display sorting. Multiple
// entries per item on the same date are allowed.
type LogEntry struct {
	LogID     string `json:"id"`
	ItemID    string `json:"itemId"`
	Date      string `json:"date"` // calendar date, YYYY-MM-DD
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// LogPatch describes a partial update to a LogEntry.
// Nil fields are left unchanged.
type LogPatch struct {
	Date *string
	Note *string
}
