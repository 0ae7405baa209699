// Package hotkey provides a registry of global key bindings whose lifetime
// is tied to the component that registered them.
package hotkey

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler reacts to a matched key and may return a command.
type Handler func(msg tea.KeyMsg) tea.Cmd

type registration struct {
	id      uint64
	binding key.Binding
	handler Handler
}

// Registry holds live global bindings. The most recent registration wins
// when several bindings match the same key.
type Registry struct {
	mu     sync.Mutex
	nextID uint64
	regs   []registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds binding and returns a func that removes it. The release
// func may be called any number of times.
func (r *Registry) Register(binding key.Binding, handler Handler) (release func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.regs = append(r.regs, registration{id: id, binding: binding, handler: handler})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, reg := range r.regs {
		if reg.id == id {
			r.regs = append(r.regs[:i], r.regs[i+1:]...)
			return
		}
	}
}

// Dispatch runs the handler of the newest enabled binding matching msg.
func (r *Registry) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	r.mu.Lock()
	var handler Handler
	for i := len(r.regs) - 1; i >= 0; i-- {
		if key.Matches(msg, r.regs[i].binding) {
			handler = r.regs[i].handler
			break
		}
	}
	r.mu.Unlock()

	if handler == nil {
		return nil, false
	}
	return handler(msg), true
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.regs)
}
