package cycle

import (
	"context"
	"fmt"
)

// Action is a staged write.
type Action interface {
	Execute(ctx context.Context) error

	// Description names the action in logs and errors.
	Description() string
}

// ActionFunc adapts a function to Action.
type ActionFunc struct {
	Name string
	Fn   func(ctx context.Context) error
}

// Execute implements Action.
func (a ActionFunc) Execute(ctx context.Context) error {
	return a.Fn(ctx)
}

// Description implements Action.
func (a ActionFunc) Description() string {
	return a.Name
}

// AddAction stages an action.
func (c *Cycle) AddAction(action Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.committed {
		return ErrAlreadyCommitted
	}

	c.actions = append(c.actions, action)

	return nil
}

// Commit runs the staged actions in order, each one completing before the
// next starts. It returns how many actions succeeded. The cycle counts as
// committed even when an action fails.
func (c *Cycle) Commit(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.committed {
		return 0, ErrAlreadyCommitted
	}

	c.committed = true

	for i, action := range c.actions {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		if err := action.Execute(ctx); err != nil {
			return i, fmt.Errorf("action %q failed: %w", action.Description(), err)
		}
	}

	return len(c.actions), nil
}

// Actions returns a copy of the staged actions.
func (c *Cycle) Actions() []Action {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Action, len(c.actions))
	copy(result, c.actions)

	return result
}
