package scene

import (
	"github.com/matt-g-everett/motion/tween"
)

// Handle identifies a registered target. Tweens hold handles, never the
// targets themselves, so removing a target from the registry makes every
// dependent tween finish on its next tick.
type Handle uint64

// Registry owns the scene's targets and hands out weak references to
// them. Like the rest of the engine it is single-threaded: mutate it only
// between ticks.
type Registry struct {
	nodes map[Handle]tween.Target
	next  Handle
}

// NewRegistry creates an instance of a Registry.
func NewRegistry() *Registry {
	r := new(Registry)
	r.nodes = make(map[Handle]tween.Target)
	return r
}

// Add registers a target and returns its handle.
func (r *Registry) Add(t tween.Target) Handle {
	r.next++
	r.nodes[r.next] = t
	return r.next
}

// Remove drops a target. Dependent tweens observe the removal on their
// next advance.
func (r *Registry) Remove(h Handle) {
	delete(r.nodes, h)
}

// Get returns the target for a handle, if it is still alive.
func (r *Registry) Get(h Handle) (tween.Target, bool) {
	t, ok := r.nodes[h]
	return t, ok
}

// Len reports how many targets are registered.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// Ref returns a resolver for the handle, suitable for tween.New.
func (r *Registry) Ref(h Handle) tween.Resolver {
	return ref{registry: r, handle: h}
}

type ref struct {
	registry *Registry
	handle   Handle
}

func (rf ref) Resolve() (tween.Target, bool) {
	return rf.registry.Get(rf.handle)
}
