package study

import "github.com/abhisek/lexiz/internal/store"

// startedMsg is sent once the history entry is open and the session can begin.
type startedMsg struct {
	Recorder *store.Recorder
	Err      error
}
