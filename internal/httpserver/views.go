package httpserver

import (
	"github.com/robalobadob/twiddle/internal/game"
)

// eventView is the JSON form of a game.StateChange, tagged by Type.
type eventView struct {
	Type         string           `json:"type"`
	AttemptIndex *int             `json:"attemptIndex,omitempty"`
	Char         string           `json:"char,omitempty"`
	Word         string           `json:"word,omitempty"`
	CharStates   []game.CharState `json:"charStates,omitempty"`
	IsFinished   *bool            `json:"isFinished,omitempty"`
	IsWin        *bool            `json:"isWin,omitempty"`
	Solution     string           `json:"solution,omitempty"`
	Message      string           `json:"message,omitempty"`
}

func newEventView(c game.StateChange) eventView {
	v := eventView{Type: c.Kind()}
	switch ev := c.(type) {
	case game.AddedChar:
		v.AttemptIndex = &ev.AttemptIndex
		v.Char = string(ev.Char)
	case game.RemovedChar:
		v.AttemptIndex = &ev.AttemptIndex
	case game.InvalidAttempt:
		v.Message = "Not in word list."
	case game.AttemptValidated:
		v.AttemptIndex = &ev.AttemptIndex
		v.Word = ev.Word
		v.CharStates = ev.CharStates
		v.IsFinished = &ev.IsFinished
		v.IsWin = &ev.IsWin
		if ev.IsFinished {
			v.Solution = ev.Solution
		}
	case game.GameError:
		v.Message = ev.Message
	}
	return v
}

// gameView is the JSON form of a session's board.
type gameView struct {
	ID            string        `json:"id"`
	Mode          string        `json:"mode"`
	WordLength    int           `json:"wordLength"`
	MaxAttempts   int           `json:"maxAttempts"`
	ActiveAttempt int           `json:"activeAttempt"`
	Finished      bool          `json:"finished"`
	Won           bool          `json:"won"`
	Solution      string        `json:"solution,omitempty"`
	Attempts      []attemptView `json:"attempts"`
}

type attemptView struct {
	Word       string           `json:"word"`
	CharStates []game.CharState `json:"charStates,omitempty"`
	Validated  bool             `json:"validated"`
}

func newGameView(sess *game.Session, snap game.Snapshot, solution string) gameView {
	v := gameView{
		ID:            sess.ID,
		Mode:          sess.Mode,
		WordLength:    snap.WordLength,
		MaxAttempts:   snap.MaxAttempts,
		ActiveAttempt: snap.ActiveAttemptIndex,
		Finished:      snap.IsFinished,
		Won:           snap.IsWin,
		Solution:      solution,
		Attempts:      make([]attemptView, len(snap.Attempts)),
	}
	for i, a := range snap.Attempts {
		v.Attempts[i] = attemptView{Word: a.Word, CharStates: a.CharStates, Validated: a.IsValidated}
	}
	return v
}
