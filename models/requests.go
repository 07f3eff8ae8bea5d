package models

// Wire contract of the remote sync service (JSON over HTTPS). All
// authenticated requests carry the X-Auth-Token header; non-2xx responses
// carry a plain-text or JSON error body which the client surfaces verbatim.

// CreateAccountRequest is the body of POST /api/v1/accounts.
type CreateAccountRequest struct {
	AuthToken string `json:"authToken"`
}

// CreateAccountResponse returns the server-generated key-derivation salt
// for a freshly created account.
type CreateAccountResponse struct {
	Salt string `json:"salt"`
}

// ValidateAccountResponse is the body of GET /api/v1/accounts/validate.
// Salt is returned so a reconnecting device can re-derive its key.
type ValidateAccountResponse struct {
	Valid      bool   `json:"valid"`
	EntryCount int    `json:"entryCount"`
	CreatedAt  int64  `json:"createdAt"`
	Salt       string `json:"salt"`
}

// PushRequest is the body of POST /api/v1/sync/push.
type PushRequest struct {
	Entries []SyncEntry `json:"entries"`
}

// PushConflict describes a server-reported concurrent write: the server
// already held a newer copy of the record when the push arrived. The client
// does not auto-resolve beyond its own last-write-wins pass on the next pull.
type PushConflict struct {
	ID              string `json:"id"`
	ServerUpdatedAt int64  `json:"serverUpdatedAt"`
	ServerSeq       int64  `json:"serverSeq"`
}

// PushResponse acknowledges a push with the server's new sequence counter.
type PushResponse struct {
	Accepted  int            `json:"accepted"`
	Conflicts []PushConflict `json:"conflicts,omitempty"`
	ServerSeq int64          `json:"serverSeq"`
}

// PullResponse is one page of GET /api/v1/sync/pull?since=<seq>&limit=<n>.
type PullResponse struct {
	Entries   []SyncEntry `json:"entries"`
	ServerSeq int64       `json:"serverSeq"`
	HasMore   bool        `json:"hasMore"`
}

// FullSyncRequest is the body of POST /api/v1/sync/full, sent on first
// connect: the device uploads everything it has and receives the server's
// merged superset back.
type FullSyncRequest struct {
	Entries []SyncEntry `json:"entries"`
}

// FullSyncResponse carries the server's merged entry set after a full sync.
type FullSyncResponse struct {
	Entries   []SyncEntry `json:"entries"`
	ServerSeq int64       `json:"serverSeq"`
	Merged    int         `json:"merged"`
}
