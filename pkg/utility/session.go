package utility

import (
	"sync"

	"github.com/google/uuid"
)

// SessionID identifies a single process run. Recorder entries and persisted
// snapshots carry it so rows from different runs can be told apart.
type SessionID = uuid.UUID

var (
	sessionID     SessionID
	sessionIDOnce sync.Once
	sessionIDMu   sync.RWMutex
)

func GetSessionID() SessionID {
	sessionIDOnce.Do(func() {
		sessionID = uuid.Must(uuid.NewV7())
	})

	sessionIDMu.RLock()
	defer sessionIDMu.RUnlock()
	return sessionID
}

func ResetSessionID() SessionID {
	sessionIDMu.Lock()
	defer sessionIDMu.Unlock()

	sessionID = uuid.Must(uuid.NewV7())
	return sessionID
}
