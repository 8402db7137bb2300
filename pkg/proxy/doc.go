// Package proxy exposes the render objects behind declarative widgets at
// the moment just before they are first drawn.
//
// Wrapping a widget with one of the attach functions injects a hidden,
// zero-size marker render object next to the widget's render output. When
// the frame driver delivers the pre-draw signal, the marker locates a
// target render object - the widget's own envelope, an ancestor, a
// descendant, or a named window chrome element - and invokes the caller's
// callback with it, synchronously, before anything is painted. Mutations
// made in the callback are therefore visible in the same frame, with no
// flash of unmodified content.
//
//	widgets.SizedBox{
//	    Child: proxy.To(content, proxy.Ancestor[*widgets.RenderTitlebar](),
//	        func(bar *widgets.RenderTitlebar) {
//	            bar.SetTitle("Ready")
//	        }),
//	}
//
// All lookups degrade to silent no-ops: if no view satisfies the
// relationship on a given frame, the callback is simply not invoked for
// that frame. The search re-runs before every subsequent draw, so a match
// that appears later still fires.
package proxy
