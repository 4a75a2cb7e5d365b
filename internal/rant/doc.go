// Package rant implements the request lifecycle shared by the rate, roast and rhyme actions.
//
// A [Submitter] is constructed once per [Action] at startup. All submitters share a single [Controls]
// value whose [Status] is either [Idle] or [Busy], so disabling "all action controls" is one state
// change rather than three flags.
//
// A click runs through these states:
//
//	Idle → Validating → Submitting → Completed-{Success,Failure,Unauthenticated} → Idle
//
// [Submitter.Click] performs validation and, when a playlist is selected, moves the controls to Busy
// and returns the [Request] to send. The caller runs the request with [Client.Submit], which reduces the
// HTTP exchange to one [Outcome], and hands it back to [Controls.Complete].
//
// [Unauthenticated] is not displayed. Complete returns the login location for the caller to navigate to;
// the controls stay Busy because the session is over.
//
// [Link] mirrors the playlist selection into a playlist URL.
package rant
