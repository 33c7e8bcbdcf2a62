package htmlayout

// htmlTags is the HTML5 element set registered by default. Every tag maps
// to a generic Element container.
var htmlTags = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "blockquote", "body", "br", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog",
	"div", "dl", "dt",
	"em", "embed",
	"fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"head", "header", "hgroup", "hr", "html",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li", "link",
	"main", "map", "mark", "meta", "meter",
	"nav", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "pre", "progress",
	"q", "rp", "rt", "ruby",
	"s", "samp", "script", "section", "select", "small", "source",
	"span", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th",
	"thead", "time", "title", "tr", "track",
	"u", "ul",
	"var", "video",
	"wbr",
}

// HTMLProvider exposes the HTML5 element set as Element components under
// the empty prefix, so documents can use plain tags like <div> and <h1>
// without any custom registration.
type HTMLProvider struct{}

// Namespace implements Provider.
func (HTMLProvider) Namespace() string { return "html" }

// Components implements Provider.
func (HTMLProvider) Components() ([]Descriptor, error) {
	descs := make([]Descriptor, 0, len(htmlTags))
	for _, tag := range htmlTags {
		descs = append(descs, Descriptor{Name: tag, New: NewElement(tag), Container: true})
	}
	return descs, nil
}

// DefaultRegistry creates a registry pre-loaded with the HTML5 tag set.
// Additional providers can be registered on it afterwards.
func DefaultRegistry(opts ...func(*Registry)) *Registry {
	r := NewRegistry(opts...)
	r.RegisterProvider(HTMLProvider{}, "", false)
	return r
}
