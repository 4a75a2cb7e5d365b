// Package ui implements the interactive terminal client using bubbletea's Elm architecture.
//
// A single screen hosts:
//   - a playlist selector (bubbles/list) whose first option is "no playlist"
//   - the rate, roast and rhyme controls, bound to 1, 2 and 3
//   - a spinner shown while a submission is in flight
//   - the result area (the server's reply, verbatim) and the error area
//   - the playlist link, kept in sync with the selection and opened with o
//
// The (view) [Model] implements the standard Init/Update/View pattern, receiving messages via the Msg union type.
// Submissions run in a [tea.Cmd] and their [rant.Outcome] comes back as a [MsgRantCompleted] message, so the
// shared [rant.Controls] are only ever mutated on the update loop.
//
// When the server answers 401 the login page is opened in the browser and the program quits; [Model.Location]
// reports where the user was sent.
package ui
