package domain

// SessionSnapshot is the read-only coordinator state exposed to callers.
//
// Invariants maintained by the coordinator:
//   - IsInitialized becomes true exactly once per process lifetime and never reverts.
//   - Whenever Identity is non-nil, Session is non-nil (set together).
//   - Profile may lag Identity but never references a different identity id.
type SessionSnapshot struct {
	Identity      *Identity        `json:"identity,omitempty"`
	Session       *ProviderSession `json:"session,omitempty"`
	Profile       *Profile         `json:"profile,omitempty"`
	IsLoading     bool             `json:"is_loading"`
	IsInitialized bool             `json:"is_initialized"`
}

// IsAuthenticated returns true if the snapshot carries a signed-in identity
func (s SessionSnapshot) IsAuthenticated() bool {
	return s.Identity != nil && s.Session != nil
}
