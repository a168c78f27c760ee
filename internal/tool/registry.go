// Package tool exposes the negotiation operations as a registry of named,
// callable tools for the agent layer. The registry is built explicitly at
// startup; there is no ambient global registration.
//
// Every tool returns a single human-readable string; failures are rendered
// into that string rather than raised, so a calling agent can always parse
// the outcome and self-correct.
package tool

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTool is returned by Dispatch for a name that was never registered.
var ErrUnknownTool = errors.New("unknown tool")

// Handler executes an operation with loosely-typed arguments and renders
// the outcome as a single string. Handlers never return errors: every
// failure path is part of the string contract.
type Handler func(ctx context.Context, args map[string]any) string

// Tool couples an operation name with its description and handler. The
// description is written for the calling agent, not for humans reading code.
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}

// Registry maps operation names to handlers.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Registering an empty name, a nil handler, or a
// duplicate name is a programming error and fails loudly.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return errors.New("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %s: handler is required", t.Name)
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %s: already registered", t.Name)
	}
	r.tools[t.Name] = t
	return nil
}

// Dispatch invokes the named tool. The only error condition is an unknown
// name; everything else is inside the returned string.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Handler(ctx, args), nil
}

// List returns all registered tools sorted by name.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
