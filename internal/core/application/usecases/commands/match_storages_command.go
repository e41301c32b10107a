package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrMatchStoragesCommandIsNotConstructed = errors.New(
	"MatchStoragesCommand must be created via NewMatchStoragesCommand constructor",
)

// MatchStoragesCommand triggers one full matching run: every activated vendor
// storage with available materials is matched against active orders within
// its delivery radius, producing priced-distance order requests and vendor
// notifications.
type MatchStoragesCommand struct {
	guard guard.ConstructorGuard
}

// NewMatchStoragesCommand creates a new command to trigger a matching run.
func NewMatchStoragesCommand() MatchStoragesCommand {
	return MatchStoragesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MatchStoragesCommand) Validate() error {
	return c.guard.Validate(ErrMatchStoragesCommandIsNotConstructed)
}
