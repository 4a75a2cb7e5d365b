package rant

import (
	"fmt"
	"strings"
)

// Action is one of the three rant operations.
type Action int

const (
	Rate Action = iota
	Roast
	Rhyme
)

// Actions lists every action in display order.
var Actions = []Action{Rate, Roast, Rhyme}

func (a Action) String() string {
	switch a {
	case Rate:
		return "rate"
	case Roast:
		return "roast"
	case Rhyme:
		return "rhyme"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Title is the label shown on the action's control.
func (a Action) Title() string {
	s := a.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Control is the identifier of the action's trigger control.
func (a Action) Control() string {
	return a.String() + "-button"
}

// Endpoint is the server path the action posts to.
func (a Action) Endpoint() string {
	return "/rant/" + a.String()
}

// Key is the keyboard shortcut bound to the action's control.
func (a Action) Key() string {
	return fmt.Sprintf("%d", int(a)+1)
}

// ParseAction returns the action named s (case-insensitive).
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}
