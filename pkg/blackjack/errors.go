package blackjack

import "errors"

// ErrInsufficientFunds is returned when a bet exceeds the participant's balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidBet is returned when a bet is not a positive amount
var ErrInvalidBet = errors.New("bet must be greater than zero")

// ErrAlreadySettled is returned when a participant is settled a second time in the same round
var ErrAlreadySettled = errors.New("participant has already been settled")
