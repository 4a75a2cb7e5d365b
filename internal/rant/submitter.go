package rant

import (
	"fmt"

	"github.com/desertthunder/rantify/internal/shared"
)

// Status is the shared enabled state of all action controls.
type Status int

const (
	Idle Status = iota
	Busy
)

func (s Status) String() string {
	if s == Busy {
		return "busy"
	}
	return "idle"
}

// View is a snapshot of the visible UI state.
//
// Loading is true exactly while a submission is in flight. Result and Error are never both set.
type View struct {
	Status  Status
	Loading bool
	Result  string
	Error   string
}

// Controls is the UI state shared by every [Submitter].
type Controls struct {
	view View
}

// NewControls returns controls in the Idle state with empty result and error areas.
func NewControls() *Controls {
	return &Controls{}
}

// View returns the current UI state.
func (c *Controls) View() View {
	return c.view
}

// Enabled reports whether the action controls accept clicks.
func (c *Controls) Enabled() bool {
	return c.view.Status == Idle
}

func (c *Controls) showResult(content string) {
	c.view.Result = content
	c.view.Error = ""
}

func (c *Controls) showError(message string) {
	c.view.Error = message
	c.view.Result = ""
}

// begin disables every control and replaces the result area with the loading indicator.
func (c *Controls) begin() {
	c.view = View{Status: Busy, Loading: true}
}

// Complete applies the outcome of the in-flight submission.
//
// For [Unauthenticated] it returns the location to navigate to and leaves the controls Busy.
// Otherwise it re-enables the controls and returns "".
func (c *Controls) Complete(o Outcome) string {
	switch o := o.(type) {
	case Success:
		c.view.Loading = false
		c.showResult(o.Content)
		c.view.Status = Idle
	case Failure:
		c.view.Loading = false
		c.showError(o.Message)
		c.view.Status = Idle
	case Unauthenticated:
		return o.Location
	default:
		panic(fmt.Sprintf("rant: unhandled outcome %T", o))
	}
	return ""
}

// Request is a single submission created by a click.
type Request struct {
	ID     string
	Action Action
	Form   Form
}

// Endpoint is the path the request is posted to.
func (r Request) Endpoint() string {
	return r.Action.Endpoint()
}

// Submitter drives the click-to-completion cycle of one [Action].
type Submitter struct {
	action   Action
	controls *Controls
	form     Form
}

// NewSubmitter binds action to the shared controls. form holds the static fields sent with every request.
func NewSubmitter(action Action, controls *Controls, form Form) *Submitter {
	return &Submitter{action: action, controls: controls, form: form}
}

// NewSubmitters creates one submitter per action, in [Actions] order, all sharing controls.
func NewSubmitters(controls *Controls, form Form) []*Submitter {
	submitters := make([]*Submitter, len(Actions))
	for i, a := range Actions {
		submitters[i] = NewSubmitter(a, controls, form)
	}
	return submitters
}

// Action returns the bound action.
func (s *Submitter) Action() Action {
	return s.action
}

// Click validates selection and, on success, moves the controls to Busy and returns the request to send.
//
// It returns false when the controls are disabled or no playlist is selected; in the latter case the
// validation message is displayed.
func (s *Submitter) Click(selection string) (Request, bool) {
	if !s.controls.Enabled() {
		return Request{}, false
	}

	if selection == "" {
		s.controls.showError(ValidationMessage)
		return Request{}, false
	}

	s.controls.begin()

	return Request{
		ID:     shared.GenerateID(),
		Action: s.action,
		Form:   s.form.WithPlaylist(selection),
	}, true
}
