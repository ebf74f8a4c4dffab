// Package locator resolves interface names to provider factories and
// instances without the caller hardcoding implementation names.
//
// Discovery merges two avenues. The first is manifest files found under
// META-INF/services/<interface-name> inside the fs.FS roots of the supplied
// Sources: UTF-8 text, one provider name per line, # starting a trailing
// comment. The second is an optional external registry reached through a
// Handle, which fails closed: a detached or absent registry behaves as an
// empty one. Merged results are a union, deduplicated, first-seen order.
//
// Discovered names resolve to registered Factory closures rather than type
// references:
//
//	factories := locator.NewFactories()
//	factories.Register("com.example.WidgetMaker", func() (any, error) {
//	    return widget.NewMaker(), nil
//	})
//
//	loc := locator.New()
//	src := locator.Source{Resources: []fs.FS{assets}, Factories: factories}
//	svc, err := loc.Service("example.Widget", src, locator.Source{})
package locator
