package models

// SyncPhase is the current state of the sync state machine.
type SyncPhase string

const (
	PhaseIdle    SyncPhase = "idle"
	PhasePushing SyncPhase = "pushing"
	PhasePulling SyncPhase = "pulling"
	PhaseMerging SyncPhase = "merging"
	PhaseError   SyncPhase = "error"
)

// SyncStatus is the user-visible sync state snapshot. Error holds the
// message of the most recent failure, Notice holds a non-fatal advisory
// such as a push conflict; both are cleared by the next successful
// operation. PendingChanges counts records waiting for the next push.
type SyncStatus struct {
	Phase          SyncPhase `json:"phase"`
	Error          string    `json:"error,omitempty"`
	Notice         string    `json:"notice,omitempty"`
	LastSyncAt     int64     `json:"lastSyncAt,omitempty"`
	PendingChanges int       `json:"pendingChanges"`
}
