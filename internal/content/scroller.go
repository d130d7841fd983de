package content

import (
	"errors"
	"fmt"
)

// Section is the anchor id of a page section.
type Section string

const (
	SectionHome     Section = "home"
	SectionServices Section = "services"
	SectionProcess  Section = "process"
	SectionPricing  Section = "pricing"
	SectionContact  Section = "contact"
)

// Sections lists the page sections in page order.
var Sections = []Section{SectionHome, SectionServices, SectionProcess, SectionPricing, SectionContact}

const (
	// DefaultScrollOffset is the fixed header height subtracted when scrolling.
	DefaultScrollOffset = 80
	// ScrolledThreshold is the scroll depth after which the nav turns solid.
	ScrolledThreshold = 50
)

// ErrUnknownSection is returned for a link to a section the page does not have.
var ErrUnknownSection = errors.New("content: unknown section")

// Scroller is the single scroll-to-section capability of the page. Every
// link to a section is built from it.
type Scroller struct {
	offset   int
	sections map[Section]struct{}
}

// NewScroller returns a scroller for the given sections.
func NewScroller(offset int, sections ...Section) *Scroller {
	s := &Scroller{offset: offset, sections: make(map[Section]struct{}, len(sections))}
	for _, id := range sections {
		s.sections[id] = struct{}{}
	}
	return s
}

// DefaultScroller knows every page section and uses DefaultScrollOffset.
func DefaultScroller() *Scroller {
	return NewScroller(DefaultScrollOffset, Sections...)
}

// Href returns the in-page link for id.
func (s *Scroller) Href(id Section) (string, error) {
	if _, ok := s.sections[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	return "#" + string(id), nil
}

// Offset is the header offset in pixels.
func (s *Scroller) Offset() int { return s.offset }

// ScrolledThreshold is the nav background threshold in pixels.
func (s *Scroller) ScrolledThreshold() int { return ScrolledThreshold }
