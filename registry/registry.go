// Package registry maps element capabilities to constructible element kinds.
//
// The table is populated by explicit registration, one call per concrete
// kind, usually from an init function. Registration order is resolution
// order; once registration is done the table is read-only and safe for
// concurrent readers.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/abraham-situmorang/AngleSharp/dom"
)

// Capability identifies an abstract role an element can play. Build one with
// Cap; the zero Capability matches nothing.
type Capability struct {
	t reflect.Type
}

// Cap derives the capability key for the interface type T.
func Cap[T any]() Capability {
	return Capability{t: reflect.TypeOf((*T)(nil)).Elem()}
}

func (c Capability) String() string {
	if c.t == nil {
		return "<none>"
	}
	return c.t.String()
}

// Descriptor describes one registered element kind: the capabilities it
// serves, whether it can be instantiated, and its construction signatures.
type Descriptor struct {
	// Name identifies the kind in logs and errors.
	Name string

	// Tags are the markup tags the kind binds to when parsing.
	Tags []string

	// Capabilities lists the roles this kind serves.
	Capabilities []Capability

	// Abstract marks marker-only entries that can never be instantiated.
	Abstract bool

	// New constructs a detached instance. Optional.
	New func() dom.Node

	// NewIn constructs an instance for the given document. Optional; used
	// only when New is absent.
	NewIn func(*dom.Document) dom.Node

	// Wrap binds a typed instance onto an existing tree node. Used by the
	// parse entry points. Optional.
	Wrap func(*html.Node) dom.Node
}

// Validate checks the descriptor invariants.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return ErrDescriptorNameEmpty
	}
	if len(d.Capabilities) == 0 {
		return ErrNoCapabilities
	}
	if !d.Abstract && d.New == nil && d.NewIn == nil {
		return ErrNoConstructor
	}
	return nil
}

// Implements reports whether the descriptor declares c.
func (d *Descriptor) Implements(c Capability) bool {
	for _, have := range d.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

func (d *Descriptor) instantiable() bool {
	return !d.Abstract && (d.New != nil || d.NewIn != nil)
}

// Registry is an ordered capability table.
type Registry struct {
	mu     sync.RWMutex
	order  []*Descriptor
	byTag  map[string]*Descriptor
	logger *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes registry diagnostics to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byTag:  make(map[string]*Descriptor),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register appends d to the table. A second instantiable descriptor for an
// already-satisfied capability is accepted so registration order stays the
// single source of precedence, but it is logged: only the first can ever win
// resolution, and two kinds claiming one concrete capability is almost always
// a registration mistake.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid descriptor: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if d.instantiable() {
		for _, c := range d.Capabilities {
			if prev := r.resolveLocked(c); prev != nil {
				r.logger.Warn("capability already satisfied, first registration wins",
					zap.Stringer("capability", c),
					zap.String("winner", prev.Name),
					zap.String("shadowed", d.Name))
			}
		}
	}

	r.order = append(r.order, d)
	for _, tag := range d.Tags {
		if _, taken := r.byTag[tag]; !taken {
			r.byTag[tag] = d
		}
	}

	r.logger.Debug("registered element kind",
		zap.String("name", d.Name),
		zap.Bool("abstract", d.Abstract),
		zap.Int("capabilities", len(d.Capabilities)))
	return nil
}

// MustRegister registers d and panics on error. For static init-time tables.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Resolve picks the concrete descriptor serving c: the first instantiable
// match in registration order. Zero matches, or matches that are all
// abstract, yield ok=false; that is a normal empty result, not an error.
func (r *Registry) Resolve(c Capability) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d := r.resolveLocked(c); d != nil {
		return d, true
	}
	return nil, false
}

func (r *Registry) resolveLocked(c Capability) *Descriptor {
	if c.t == nil {
		return nil
	}
	for _, d := range r.order {
		if d.instantiable() && d.Implements(c) {
			return d
		}
	}
	return nil
}

// ResolveFor is Resolve keyed by the interface type T.
func ResolveFor[T any](r *Registry) (*Descriptor, bool) {
	return r.Resolve(Cap[T]())
}

// ForTag returns the descriptor bound to a markup tag.
func (r *Registry) ForTag(tag string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byTag[tag]
	return d, ok
}

// Count returns the number of registered descriptors.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Default registry instance element kinds register into.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds d to the default registry.
func Register(d *Descriptor) error { return defaultRegistry.Register(d) }

// MustRegister adds d to the default registry and panics on error.
func MustRegister(d *Descriptor) { defaultRegistry.MustRegister(d) }
