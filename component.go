package htmlayout

// Constructor builds a component from named arguments derived from a
// markup node's attributes. Returning an error means the arguments were
// rejected (unknown or mistyped prop); the builder surfaces that as a
// ConstructionError.
type Constructor func(args map[string]any) (any, error)

// Container is implemented by components that hold an ordered, mutable
// list of children. A container's children are the node's trimmed direct
// text (a plain string, when non-empty) followed by the built child
// components in document order.
type Container interface {
	AppendChild(child any)
}

// Element is the generic container component backing plain markup tags.
// It accepts any named argument into Props and lifts the conventional
// "id" attribute into ID.
type Element struct {
	Tag      string
	ID       string
	Props    map[string]any
	Children []any
}

// AppendChild implements Container.
func (e *Element) AppendChild(child any) {
	e.Children = append(e.Children, child)
}

// NewElement returns a Constructor producing Element components for tag.
func NewElement(tag string) Constructor {
	return func(args map[string]any) (any, error) {
		el := &Element{Tag: tag, Props: make(map[string]any, len(args))}
		for name, value := range args {
			if name == "id" {
				if s, ok := value.(string); ok {
					el.ID = s
				}
			}
			el.Props[name] = value
		}
		return el, nil
	}
}
