package checkout

import "errors"

// ErrSessionNotFound is returned when an operation references a session
// id that was never created (or was dropped).
var ErrSessionNotFound = errors.New("session not found")
