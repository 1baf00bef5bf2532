package display

import "github.com/kantodex/kantodex/pkg/dex"

// Surface identifies which single display region is visible. Exactly one
// non-Idle surface shows at a time; entering one always clears the others.
type Surface int

const (
	Idle Surface = iota
	ShowingSuggestions
	ShowingResults
	ShowingError
)

func (s Surface) String() string {
	switch s {
	case Idle:
		return "idle"
	case ShowingSuggestions:
		return "suggestions"
	case ShowingResults:
		return "results"
	case ShowingError:
		return "error"
	}
	return "unknown"
}

// User-facing messages. A search miss and a filter miss both render as
// content inside the results surface; the error surface is reserved for the
// empty-input prompt.
const (
	PromptMessage    = "Please enter a name or Pokédex number"
	NotFoundMessage  = "Not found"
	LookupErrMessage = "Something went wrong, please try again"
	NoResultsMessage = "No Pokémon found for this type"
)

// State is the full description of what the rendering layer should show.
// It is a plain value: transitions build a new State, they never mutate one.
type State struct {
	Surface     Surface
	Suggestions []*dex.Entity
	Results     []*dex.Entity
	Message     string

	// Input mirrors the search box: searches leave it as typed, type
	// filters and reset clear it.
	Input string
}

// Pure transition constructors. The coordinator decides when these apply;
// they only describe the target state.

func idleState() State {
	return State{Surface: Idle}
}

func suggestionsState(input string, list []*dex.Entity) State {
	if len(list) == 0 {
		return State{Surface: Idle, Input: input}
	}
	return State{Surface: ShowingSuggestions, Suggestions: list, Input: input}
}

func resultsState(input string, list []*dex.Entity) State {
	return State{Surface: ShowingResults, Results: list, Input: input}
}

func resultsMessageState(input, msg string) State {
	return State{Surface: ShowingResults, Message: msg, Input: input}
}

func promptState() State {
	return State{Surface: ShowingError, Message: PromptMessage}
}
