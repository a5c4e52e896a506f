package timer

import "errors"

// ErrTimerNotFound is returned when the timer record does not exist and lazy
// creation is disabled.
var ErrTimerNotFound = errors.New("timer not found")

// ErrStorageUnavailable wraps connectivity and write failures of the store.
var ErrStorageUnavailable = errors.New("timer storage unavailable")
