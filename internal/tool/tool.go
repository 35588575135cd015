// Package tool implements the chat assistant's executable capabilities and
// the registry that resolves them by name.
package tool

import (
	"context"

	"sheet-ai/backend/internal/model"
)

// Tool is a single executable capability. Run emits a finite sequence of
// protocol events on out, terminating with exactly one complete or error
// status event that carries the final result, then closes out. A tool never
// lets an internal failure escape Run; it reports it as an error event.
// Instances are single-use: one invocation per instance.
type Tool interface {
	Name() string
	Run(ctx context.Context, toolCallID, rawArgs string, out chan<- model.ProtocolEvent)
}

// Constructor builds a fresh tool instance for one invocation.
type Constructor func() Tool

// Registry maps tool names to constructors.
type Registry struct {
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

func (r *Registry) Register(name string, ctor Constructor) {
	r.ctors[name] = ctor
}

// Resolve returns a fresh instance of the named tool, or nil if no tool is
// registered under that name. An unknown name is not an error: the caller
// treats it as "no tool available" and completes the turn without executing.
func (r *Registry) Resolve(name string) Tool {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil
	}
	return ctor()
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	return names
}

// send delivers an event unless the context has been cancelled.
func send(ctx context.Context, out chan<- model.ProtocolEvent, ev model.ProtocolEvent) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
