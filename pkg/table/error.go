package table

import "errors"

// ErrRoundInProgress is returned when a new round is started before the current one concludes
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrNoRound is returned when a round action arrives before any round has started
var ErrNoRound = errors.New("no round in progress")
