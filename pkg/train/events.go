/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: events.go
Description: Training events for Maylee NLP classifiers. An event is one
outcome observation with its context features; trainers consume event
streams produced by the task packages.
*/

package train

import "fmt"

// Event is one training observation: the outcome that occurred and the
// features describing its context.
type Event struct {
	Outcome  string
	Features []string
}

// NewEvent creates an event.
func NewEvent(outcome string, features []string) Event {
	return Event{Outcome: outcome, Features: features}
}

// String formats the event the way event dumps are usually eyeballed:
// outcome first, features after.
func (e Event) String() string {
	return fmt.Sprintf("%s %v", e.Outcome, e.Features)
}
