package htmlayout

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Registry maps markup tag names to component constructors. Tags are
// derived from provider descriptors: "{prefix}-{lowercased name}" when the
// provider was registered with a prefix, "{lowercased name}" otherwise.
// Lookups are case-insensitive. When two providers derive the same tag the
// one scanned last wins; that is a documented policy, not a bug.
//
// A Registry is safe for concurrent use; all mutation and lookup is
// serialized internally.
type Registry struct {
	mu       sync.Mutex
	logger   *slog.Logger
	prefixes map[string]string   // namespace -> tag prefix
	pending  map[string]Provider // registered but not yet scanned
	scanned  map[string]Provider // already introspected, never rescanned implicitly
	order    []string            // namespaces in registration order
	tags     map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...func(*Registry)) *Registry {
	r := &Registry{
		logger:   slog.Default(),
		prefixes: make(map[string]string),
		pending:  make(map[string]Provider),
		scanned:  make(map[string]Provider),
		tags:     make(map[string]Descriptor),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// WithLogger routes provider-load warnings to l instead of slog.Default().
func WithLogger(l *slog.Logger) func(*Registry) {
	return func(r *Registry) { r.logger = l }
}

// RegisterProvider adds a provider namespace and scans it immediately.
//
// If the namespace is already registered and replace is false the call is
// a no-op returning false. Otherwise the provider is recorded (replacing
// any previous one under the same namespace), every not-yet-scanned
// namespace is scanned, and the call returns true. A provider whose
// Components call fails stays unscanned and is retried on the next
// registration or Scan; its failure never aborts the scan of others.
func (r *Registry) RegisterProvider(p Provider, prefix string, replace bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ns := p.Namespace()
	_, known := r.prefixes[ns]
	if known && !replace {
		return false
	}
	if !known {
		r.order = append(r.order, ns)
	}
	r.prefixes[ns] = prefix
	r.pending[ns] = p
	delete(r.scanned, ns)
	r.scanPendingLocked()
	return true
}

// Scan introspects a registered namespace, populating tags from its
// descriptors. Scanning is idempotent: a namespace already scanned is left
// alone. Use Rescan to force.
func (r *Registry) Scan(namespace string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scanLocked(namespace, false)
}

// Rescan forces a fresh scan of an already-registered namespace, picking
// up descriptor changes in its provider.
func (r *Registry) Rescan(namespace string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scanLocked(namespace, true)
}

// Resolve looks up the descriptor registered for a tag. The lookup is
// case-insensitive. A missing tag is a normal outcome, reported through
// the boolean, never through an error.
func (r *Registry) Resolve(tag string) (Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.tags[strings.ToLower(tag)]
	return d, ok
}

// Tags returns the sorted list of resolvable tag names.
func (r *Registry) Tags() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// scanPendingLocked scans every namespace not yet introspected, in
// registration order. Failures are warnings: the namespace stays pending
// and scanning continues.
func (r *Registry) scanPendingLocked() {
	for _, ns := range r.order {
		if _, done := r.scanned[ns]; done {
			continue
		}
		if err := r.scanLocked(ns, false); err != nil {
			r.logger.Warn("provider namespace could not be loaded, skipping",
				"namespace", ns, "error", err)
		}
	}
}

func (r *Registry) scanLocked(namespace string, force bool) error {
	if p, done := r.scanned[namespace]; done {
		if !force {
			return nil
		}
		r.pending[namespace] = p
		delete(r.scanned, namespace)
	}
	p, ok := r.pending[namespace]
	if !ok {
		return fmt.Errorf("unknown provider namespace %q", namespace)
	}
	descs, err := p.Components()
	if err != nil {
		return err
	}
	prefix := strings.ToLower(r.prefixes[namespace])
	for _, d := range descs {
		tag := strings.ToLower(d.Name)
		if prefix != "" {
			tag = prefix + "-" + tag
		}
		r.tags[tag] = d
	}
	r.scanned[namespace] = p
	delete(r.pending, namespace)
	return nil
}
