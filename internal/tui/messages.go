package tui

import "time"

// statusTickMsg drives the periodic refresh of the status snapshot.
type statusTickMsg time.Time

// syncDoneMsg reports the outcome of a manual "sync now".
type syncDoneMsg struct{ err error }

// connectDoneMsg reports the outcome of a pairing attempt.
type connectDoneMsg struct{ err error }

// disconnectDoneMsg reports the outcome of dropping the account.
type disconnectDoneMsg struct{ err error }
