package htmlayout

// Descriptor is the registration record for one component type: the name
// the tag is derived from, the constructor, and whether constructed
// components expose a children slot. The container capability is declared
// here, at registration time; the builder never probes a component for it.
type Descriptor struct {
	Name      string
	New       Constructor
	Container bool
}

// Provider is a namespace of component types offered for registration.
// Components may fail, which the registry treats as "namespace could not
// be loaded": the scan for that provider is skipped with a warning and
// registration continues for the others.
type Provider interface {
	// Namespace returns the unique name the provider is registered under.
	Namespace() string
	// Components returns the descriptors the provider contributes.
	Components() ([]Descriptor, error)
}

// StaticProvider is a Provider backed by a fixed descriptor list, handy
// for inline registration of a few component types.
type StaticProvider struct {
	Name        string
	Descriptors []Descriptor
}

// Namespace implements Provider.
func (p StaticProvider) Namespace() string { return p.Name }

// Components implements Provider.
func (p StaticProvider) Components() ([]Descriptor, error) { return p.Descriptors, nil }
