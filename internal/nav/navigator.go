// Package nav tracks which page section is active, either because the user navigated to it
// directly or because it dominates the viewport after scrolling.
package nav

import "time"

const (
	// DefaultNavbarHeight is subtracted from a section's top offset when navigating so the
	// section heading is not hidden behind the fixed navigation bar.
	DefaultNavbarHeight = 80
	// DefaultProbeOffset is added to the scroll offset to find the point used to decide which
	// section is in view.
	DefaultProbeOffset = 150
	// DefaultDebounce is the quiet period after the last scroll event before recomputing.
	DefaultDebounce = 10 * time.Millisecond
)

// Extent is the vertical span of a rendered section in layout units.
type Extent struct {
	Top    int
	Height int
}

// Contains reports whether pos falls within [Top, Top+Height).
func (e Extent) Contains(pos int) bool {
	return pos >= e.Top && pos < e.Top+e.Height
}

func (e Extent) Bottom() int {
	return e.Top + e.Height
}

// Layout is implemented by whatever renders the page. Extents are read every time they are
// needed since the layout changes with the terminal size and content.
type Layout interface {
	Extent(section Section) (Extent, bool)
}

// Viewport exposes the current scroll offset and an animated scroll primitive.
type Viewport interface {
	Offset() int
	ScrollTo(offset int)
}

type Options struct {
	NavbarHeight int
	ProbeOffset  int
	Debounce     time.Duration
}

func DefaultOptions() Options {
	return Options{
		NavbarHeight: DefaultNavbarHeight,
		ProbeOffset:  DefaultProbeOffset,
		Debounce:     DefaultDebounce,
	}
}

// Ticket identifies one scheduled recomputation. It must be handed back to Settle once the
// debounce window has elapsed.
type Ticket struct {
	owner *Navigator
	seq   uint64
}

// Navigator holds the active section. It is not safe for concurrent use; all calls are expected
// to come from the single ui event loop.
type Navigator struct {
	layout   Layout
	viewport Viewport
	opts     Options
	active   Section
	seq      uint64
	pending  bool
	mounted  bool
}

func New(layout Layout, viewport Viewport, opts Options) *Navigator {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	return &Navigator{
		layout:   layout,
		viewport: viewport,
		opts:     opts,
		active:   SectionProfile,
	}
}

func (n *Navigator) Active() Section {
	return n.active
}

func (n *Navigator) Debounce() time.Duration {
	return n.opts.Debounce
}

// Pending reports whether a scroll event is waiting to be settled.
func (n *Navigator) Pending() bool {
	return n.pending
}

func (n *Navigator) Mounted() bool {
	return n.mounted
}

// Mount starts observing scroll events.
func (n *Navigator) Mount() {
	n.mounted = true
}

// Unmount stops observing scroll events and discards any pending recomputation.
func (n *Navigator) Unmount() {
	n.mounted = false
	n.pending = false
	n.seq++
}

// Navigate scrolls the viewport so the section sits just below the navigation bar and marks it
// active right away, without waiting for the scroll animation. Unknown or unrendered sections
// are ignored.
func (n *Navigator) Navigate(section Section) bool {
	if !section.Valid() {
		return false
	}

	extent, found := n.layout.Extent(section)
	if !found {
		return false
	}

	n.viewport.ScrollTo(extent.Top - n.opts.NavbarHeight)
	n.active = section

	return true
}

// Scrolled records a scroll event. Any previously issued ticket is superseded. The returned
// ticket should be passed to Settle after Debounce() has elapsed. ok is false when the navigator
// is not mounted.
func (n *Navigator) Scrolled() (Ticket, bool) {
	if !n.mounted {
		return Ticket{}, false
	}

	n.seq++
	n.pending = true

	return Ticket{owner: n, seq: n.seq}, true
}

// Settle runs the recomputation for ticket if it is still the latest one and the navigator is
// mounted. It reports whether a recomputation happened. Each ticket settles at most once.
func (n *Navigator) Settle(ticket Ticket) bool {
	if ticket.owner != n || ticket.seq != n.seq || !n.pending || !n.mounted {
		return false
	}

	n.pending = false
	n.Recompute()

	return true
}

// Recompute picks the first section, in page order, that contains the probe point. When nothing
// contains it the active section is left as is.
func (n *Navigator) Recompute() Section {
	probe := n.viewport.Offset() + n.opts.ProbeOffset
	for _, section := range Sections() {
		extent, found := n.layout.Extent(section)
		if !found {
			continue
		}

		if extent.Contains(probe) {
			n.active = section

			break
		}
	}

	return n.active
}
