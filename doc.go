// Package htmlayout builds component trees from HTML-like markup.
//
// A Registry maps tag names to component constructors contributed by
// Provider namespaces; a Builder walks a parsed document, constructs a
// component per node, wires text and children, and indexes components by
// their id attribute. Attribute values carrying the data- prefix are
// evaluated as typed literals (strings, numbers, booleans, null, sequences,
// mappings) with no code execution.
//
//	reg := htmlayout.DefaultRegistry()
//	reg.RegisterProvider(myComponents, "app", false)
//
//	builder := htmlayout.NewBuilder(reg)
//	layout, err := builder.LoadFile("layout.html")
//	if err != nil {
//		log.Fatal(err)
//	}
//	dropdown, _ := builder.Component("color-dropdown")
//
// with a document such as:
//
//	<div>
//	    <h1>Simple Dashboard</h1>
//	    <div class="content">
//	        <app-dropdown id="color-dropdown" data-options='["Red", "Blue"]'/>
//	    </div>
//	</div>
package htmlayout
