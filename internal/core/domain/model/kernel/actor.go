package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Actor identifies who triggered a status change: the system (matching or
// cascades), a vendor, or a client. It is recorded in every history row.
type Actor int

const (
	// ActorUnknown represents an invalid or undefined actor.
	// This value (0) helps catch uninitialized Actor values.
	ActorUnknown Actor = iota

	// ActorSystem marks changes performed by background jobs and cascades.
	ActorSystem

	// ActorVendor marks changes performed by a vendor.
	ActorVendor

	// ActorClient marks changes performed by a client.
	ActorClient
)

// getActorStrings returns a map of Actor values to their string representations.
func getActorStrings() map[Actor]string {
	return map[Actor]string{
		ActorUnknown: "unknown",
		ActorSystem:  "system",
		ActorVendor:  "vendor",
		ActorClient:  "client",
	}
}

// ActorFromString parses an actor from its string representation.
// Used at persistence and API boundaries.
func ActorFromString(s string) (Actor, error) {
	for actor, str := range getActorStrings() {
		if str == s && actor != ActorUnknown {
			return actor, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause(
		"actor is invalid", fmt.Errorf("%q is not a valid actor", s))
}

// Validate checks if the Actor value is valid.
// ActorUnknown (0) and out-of-range values are invalid.
func (a Actor) Validate() error {
	if _, ok := getActorStrings()[a]; !ok || a == ActorUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor is invalid", fmt.Errorf("%d is not a valid actor", a))
	}
	return nil
}

// String returns the lowercase name of the actor.
// Implements fmt.Stringer and is safe on any value.
func (a Actor) String() string {
	if str, ok := getActorStrings()[a]; ok {
		return str
	}
	return "unknown"
}
