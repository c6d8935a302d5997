package automaton

import "fmt"

// State is a named configuration of the automaton.
type State uint8

const (
	FieldStart               State = iota // nothing consumed for the current field yet
	InUnquotedField                       // accumulating an unquoted field
	InQuotedField                         // accumulating a quoted field verbatim
	QuoteSeenInQuotedField                // a quote inside a quoted field: escape or close
	AfterQuotedFieldTrailing              // field closed, only blanks until the delimiter
	BlankRunAfterUnquoted                 // blanks after unquoted content, held back
	LeadingBlank                          // blanks before any content, discarded
	Error                                 // terminal
	numStates
)

var stateNames = [numStates]string{
	FieldStart:               "FieldStart",
	InUnquotedField:          "InUnquotedField",
	InQuotedField:            "InQuotedField",
	QuoteSeenInQuotedField:   "QuoteSeenInQuotedField",
	AfterQuotedFieldTrailing: "AfterQuotedFieldTrailing",
	BlankRunAfterUnquoted:    "BlankRunAfterUnquoted",
	LeadingBlank:             "LeadingBlank",
	Error:                    "Error",
}

// String returns the name of the state.
func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Action identifies the buffer operation that accompanies a transition.
type Action uint8

const (
	NoOp Action = iota
	AppendChar
	FlushTrailingThenAppendChar
	BufferTrailingBlank
	CommitField
	CommitRow
	RaiseUnexpectedSymbol
	numActions
)

var actionNames = [numActions]string{
	NoOp:                        "NoOp",
	AppendChar:                  "AppendChar",
	FlushTrailingThenAppendChar: "FlushTrailingThenAppendChar",
	BufferTrailingBlank:         "BufferTrailingBlank",
	CommitField:                 "CommitField",
	CommitRow:                   "CommitRow",
	RaiseUnexpectedSymbol:       "RaiseUnexpectedSymbol",
}

// String returns the name of the action.
func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// transition is one cell of the transition table.
type transition struct {
	next   State
	action Action
}

// transitions is the state transition table:
// [current state][symbol class] -> (next state, action)
var transitions [numStates][numSymbolClasses]transition

func init() {
	initTransitions()
}

func initTransitions() {
	set := func(s State, c SymbolClass, next State, a Action) {
		transitions[s][c] = transition{next, a}
	}

	set(FieldStart, Other, InUnquotedField, AppendChar)
	set(FieldStart, Comma, FieldStart, CommitField)
	set(FieldStart, Newline, FieldStart, CommitRow)
	set(FieldStart, Quote, InQuotedField, NoOp)
	set(FieldStart, Blank, LeadingBlank, NoOp)

	set(InUnquotedField, Other, InUnquotedField, AppendChar)
	set(InUnquotedField, Comma, FieldStart, CommitField)
	set(InUnquotedField, Newline, FieldStart, CommitRow)
	set(InUnquotedField, Quote, Error, RaiseUnexpectedSymbol)
	set(InUnquotedField, Blank, BlankRunAfterUnquoted, BufferTrailingBlank)

	// Everything but the quote is literal content inside quotes.
	set(InQuotedField, Other, InQuotedField, AppendChar)
	set(InQuotedField, Comma, InQuotedField, AppendChar)
	set(InQuotedField, Newline, InQuotedField, AppendChar)
	set(InQuotedField, Quote, QuoteSeenInQuotedField, NoOp)
	set(InQuotedField, Blank, InQuotedField, AppendChar)

	set(QuoteSeenInQuotedField, Other, Error, RaiseUnexpectedSymbol)
	set(QuoteSeenInQuotedField, Comma, FieldStart, CommitField)
	set(QuoteSeenInQuotedField, Newline, FieldStart, CommitRow)
	set(QuoteSeenInQuotedField, Quote, InQuotedField, AppendChar)
	set(QuoteSeenInQuotedField, Blank, AfterQuotedFieldTrailing, NoOp)

	set(AfterQuotedFieldTrailing, Other, Error, RaiseUnexpectedSymbol)
	set(AfterQuotedFieldTrailing, Comma, FieldStart, CommitField)
	set(AfterQuotedFieldTrailing, Newline, FieldStart, CommitRow)
	set(AfterQuotedFieldTrailing, Quote, Error, RaiseUnexpectedSymbol)
	set(AfterQuotedFieldTrailing, Blank, AfterQuotedFieldTrailing, NoOp)

	// Held blanks become interior once more content follows.
	set(BlankRunAfterUnquoted, Other, InUnquotedField, FlushTrailingThenAppendChar)
	set(BlankRunAfterUnquoted, Comma, FieldStart, CommitField)
	set(BlankRunAfterUnquoted, Newline, FieldStart, CommitRow)
	set(BlankRunAfterUnquoted, Quote, Error, RaiseUnexpectedSymbol)
	set(BlankRunAfterUnquoted, Blank, BlankRunAfterUnquoted, BufferTrailingBlank)

	set(LeadingBlank, Other, InUnquotedField, AppendChar)
	set(LeadingBlank, Comma, FieldStart, CommitField)
	set(LeadingBlank, Newline, FieldStart, CommitRow)
	set(LeadingBlank, Quote, InQuotedField, NoOp)
	set(LeadingBlank, Blank, LeadingBlank, NoOp)

	for c := SymbolClass(0); c < numSymbolClasses; c++ {
		set(Error, c, Error, RaiseUnexpectedSymbol)
	}
}

// Next returns the state and action for reading a symbol of class c in state s.
func Next(s State, c SymbolClass) (State, Action) {
	t := transitions[s][c]
	return t.next, t.action
}
