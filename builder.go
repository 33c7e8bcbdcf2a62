package htmlayout

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// dataPrefix is the reserved attribute prefix whose values are evaluated
// as literals instead of passing through as raw strings.
const dataPrefix = "data-"

// Builder compiles markup documents into component trees.
//
// Each node's tag is resolved through the registry, its attributes become
// named constructor arguments (data-* values evaluated as literals, the
// rest as raw strings), and children are attached in document order.
// Components declaring an id attribute are indexed for lookup.
//
//	reg := htmlayout.DefaultRegistry()
//	builder := htmlayout.NewBuilder(reg)
//	layout, err := builder.LoadString(`<div><p id="intro">Hello</p></div>`)
//	intro, _ := builder.Component("intro")
//
// A Builder is not safe for concurrent use; distinct builders sharing one
// registry may load in parallel.
type Builder struct {
	reg        *Registry
	policy     UnknownTagPolicy
	scope      map[string]any
	components map[string]any
	layout     any
}

// NewBuilder creates a builder resolving tags through reg.
func NewBuilder(reg *Registry, opts ...func(*Builder)) *Builder {
	b := &Builder{
		reg:        reg,
		policy:     UnknownElide,
		components: make(map[string]any),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// WithUnknownPolicy sets the policy for tags with no registry entry.
func WithUnknownPolicy(p UnknownTagPolicy) func(*Builder) {
	return func(b *Builder) { b.policy = p }
}

// WithScope supplies named values that data-* attributes can reference
// with the $ prefix, e.g. data-options="$colors". The scope is the only
// namespace such references can reach.
func WithScope(scope map[string]any) func(*Builder) {
	return func(b *Builder) { b.scope = scope }
}

// Load parses the document from r and builds the component tree, returning
// the root component. The identifier index and layout root are replaced
// wholesale on success; on any error both keep their previous contents.
//
// A root whose tag is unresolved under UnknownElide yields (nil, nil).
func (b *Builder) Load(r io.Reader) (any, error) {
	root, err := parseDocument(r)
	if err != nil {
		return nil, err
	}
	index := make(map[string]any)
	layout, err := b.buildTree(root, index)
	if err != nil {
		return nil, err
	}
	b.components = index
	b.layout = layout
	return layout, nil
}

// LoadFile builds a layout from a markup file.
func (b *Builder) LoadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return b.Load(f)
}

// LoadString builds a layout from a markup snippet.
func (b *Builder) LoadString(s string) (any, error) {
	return b.Load(strings.NewReader(s))
}

// Layout returns the root component of the most recent successful Load,
// or nil before the first one.
func (b *Builder) Layout() any { return b.layout }

// Component returns the component carrying the given id in the current
// layout. When the same id appears more than once, the last occurrence in
// document order wins.
func (b *Builder) Component(id string) (any, bool) {
	c, ok := b.components[id]
	return c, ok
}

// buildTree builds one node and, depth-first, its subtree. The parent
// component is constructed before its children are attached.
func (b *Builder) buildTree(el *etree.Element, index map[string]any) (any, error) {
	desc, ok := b.reg.Resolve(el.Tag)
	if !ok {
		if b.policy == UnknownElide {
			return nil, nil
		}
		desc = Descriptor{Name: el.Tag, New: NewElement(el.Tag), Container: true}
	}

	args, err := b.convertAttributes(el)
	if err != nil {
		return nil, err
	}
	component, err := desc.New(args)
	if err != nil {
		return nil, NewConstructionError(el.Tag, err)
	}

	if id := el.SelectAttrValue("id", ""); id != "" {
		index[id] = component
	}

	if desc.Container {
		slot, ok := component.(Container)
		if !ok {
			return nil, NewConstructionError(el.Tag,
				fmt.Errorf("registered as a container but %T has no children slot", component))
		}
		if text := strings.TrimSpace(el.Text()); text != "" {
			slot.AppendChild(text)
		}
		for _, child := range el.ChildElements() {
			built, err := b.buildTree(child, index)
			if err != nil {
				return nil, err
			}
			if built != nil {
				slot.AppendChild(built)
			}
		}
	}
	return component, nil
}

// convertAttributes turns a node's attributes into constructor arguments.
// Attributes whose name matches the data- prefix case-insensitively are
// evaluated and recorded under the stripped, lowercased name; they win
// over a plain attribute of the same name. Keys are processed in sorted
// order so error messages are reproducible.
func (b *Builder) convertAttributes(el *etree.Element) (map[string]any, error) {
	keys := make([]string, 0, len(el.Attr))
	values := make(map[string]string, len(el.Attr))
	for _, attr := range el.Attr {
		keys = append(keys, attr.Key)
		values[attr.Key] = attr.Value
	}
	sort.Strings(keys)

	args := make(map[string]any, len(keys))
	for _, key := range keys {
		if !isDataKey(key) {
			args[key] = values[key]
		}
	}
	for _, key := range keys {
		if !isDataKey(key) {
			continue
		}
		name := strings.ToLower(key)[len(dataPrefix):]
		value, err := b.evalAttribute(values[key])
		if err != nil {
			return nil, err
		}
		args[name] = value
	}
	return args, nil
}

func isDataKey(key string) bool {
	return len(key) > len(dataPrefix) &&
		strings.EqualFold(key[:len(dataPrefix)], dataPrefix)
}

// evalAttribute evaluates one data-* value: a $-prefixed reference is
// resolved from the builder's scope, anything else must be a literal.
func (b *Builder) evalAttribute(value string) (any, error) {
	if trimmed := strings.TrimSpace(value); strings.HasPrefix(trimmed, NamePrefix) {
		return ResolveName(trimmed, b.scope)
	}
	return Evaluate(value)
}
