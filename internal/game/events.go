// internal/game/events.go
//
// State changes returned by Game.EnterChar.
// Presentation layers switch on the concrete type:
//
//	switch ev := change.(type) {
//	case game.AddedChar:
//	case game.AttemptValidated:
//	...
//	}

package game

// Fixed GameError messages.
const (
	MsgAlreadyFinished = "Game already finished"
	MsgRowFull         = "Row full. Only Enter or Backspace allowed."
	MsgNotEnough       = "Not enough letters."
	MsgRowEmpty        = "Row empty."
)

// StateChange is the closed set of outcomes of one input.
type StateChange interface {
	// Kind is a stable snake_case tag for wire encodings.
	Kind() string
	stateChange()
}

// AddedChar: a letter was appended to the active row.
type AddedChar struct {
	AttemptIndex int
	Char         rune
}

// RemovedChar: the last letter of the active row was removed.
type RemovedChar struct {
	AttemptIndex int
}

// InvalidAttempt: the full row is not in the dictionary. The row is kept.
type InvalidAttempt struct{}

// AttemptValidated: the row was scored. Solution is always set so a
// presentation layer can build a loss message.
type AttemptValidated struct {
	AttemptIndex int
	CharStates   []CharState
	Word         string
	IsFinished   bool
	IsWin        bool
	Solution     string
}

// GameError: the input was rejected. Message is one of the Msg constants.
type GameError struct {
	Message string
}

func (AddedChar) Kind() string        { return "added_char" }
func (RemovedChar) Kind() string      { return "removed_char" }
func (InvalidAttempt) Kind() string   { return "invalid_attempt" }
func (AttemptValidated) Kind() string { return "attempt_validated" }
func (GameError) Kind() string        { return "game_error" }

func (AddedChar) stateChange()        {}
func (RemovedChar) stateChange()      {}
func (InvalidAttempt) stateChange()   {}
func (AttemptValidated) stateChange() {}
func (GameError) stateChange()        {}
