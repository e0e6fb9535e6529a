package modal

// State is the dialog's open/closed state
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Action is a request made of the dialog
type Action string

const (
	ActionOpen  Action = "open"
	ActionClose Action = "close"
)

// Transition describes what an action does from a given state
type Transition struct {
	From   State
	Action Action
	To     State
	Name   string
}

// Transitions returns every transition of the dialog state machine
func Transitions() []Transition {
	return []Transition{
		{From: StateClosed, Action: ActionOpen, To: StateOpen, Name: "open"},
		{From: StateOpen, Action: ActionOpen, To: StateOpen, Name: "replace"},
		{From: StateOpen, Action: ActionClose, To: StateClosed, Name: "close"},
		{From: StateClosed, Action: ActionClose, To: StateClosed, Name: "noop"},
	}
}

// Next returns the transition taken by action from state
func Next(from State, action Action) Transition {
	for _, t := range Transitions() {
		if t.From == from && t.Action == action {
			return t
		}
	}
	return Transition{From: from, Action: action, To: from, Name: "noop"}
}
