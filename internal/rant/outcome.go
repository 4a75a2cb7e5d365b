package rant

const (
	// ValidationMessage is shown when an action is triggered without a playlist.
	ValidationMessage = "You must select a playlist."

	// FailureMessage is shown for every non-401 error status and for transport failures.
	FailureMessage = "Failed to submit rant. Please try again."

	// LoginPath is where an unauthenticated session is sent.
	LoginPath = "/auth/login"
)

// Outcome is the completion of a submission: one of [Success], [Failure] or [Unauthenticated].
type Outcome interface {
	outcome()
}

// Success carries the server's rendered rant, displayed verbatim.
type Success struct {
	Content string
}

// Failure carries the user-facing message. Err keeps the underlying cause for logging only.
type Failure struct {
	Message string
	Err     error
}

// Unauthenticated means the session expired and the user must log in at Location.
type Unauthenticated struct {
	Location string
}

func (Success) outcome()         {}
func (Failure) outcome()         {}
func (Unauthenticated) outcome() {}
