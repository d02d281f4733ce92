// Package scene isolates the decorative rendering surface. It receives no
// application data and emits none; any implementation can be swapped for a
// static image with no functional loss.
package scene

import (
	"fmt"
	"html/template"
)

// Surface is a decorative animation mounted into a page element.
type Surface interface {
	// Mount returns the markup to embed for the given element id.
	Mount(elementID string) template.HTML
	// Unmount releases whatever Mount set up.
	Unmount()
}

type nopSurface struct{}

// Nop returns a surface that renders nothing, for tests and headless runs.
func Nop() Surface { return nopSurface{} }

func (nopSurface) Mount(string) template.HTML { return "" }
func (nopSurface) Unmount()                   {}

// StaticImage renders a fixed illustration where the animated scene would go.
type StaticImage struct {
	Src string
	Alt string
}

// Mount returns an <img> placeholder bound to the element id.
func (s StaticImage) Mount(elementID string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<img id="%s" class="scene" src="%s" alt="%s">`,
		template.HTMLEscapeString(elementID),
		template.HTMLEscapeString(s.Src),
		template.HTMLEscapeString(s.Alt),
	))
}

// Unmount is a no-op for a static image.
func (s StaticImage) Unmount() {}

var (
	_ Surface = nopSurface{}
	_ Surface = StaticImage{}
)
