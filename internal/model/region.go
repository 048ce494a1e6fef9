package model

// Kind classifies a Region.
type Kind string

const (
	KindRoot        Kind = "root"
	KindHeader      Kind = "header"
	KindNav         Kind = "nav"
	KindTitle       Kind = "title"
	KindButton      Kind = "button"
	KindCalendar    Kind = "calendar"
	KindLabelStrip  Kind = "label-strip"
	KindDayColumn   Kind = "day-column"
	KindDayLabel    Kind = "day-label"
	KindDayNumber   Kind = "day-number"
	KindRow         Kind = "row"
	KindCell        Kind = "cell"
	KindSlot        Kind = "slot"
	KindOverflow    Kind = "overflow"
	KindDetail      Kind = "detail"
	KindDetailLabel Kind = "detail-label"
	KindDetailList  Kind = "detail-list"
)

// Attr is a layout attribute passed through to the output verbatim.
type Attr struct {
	Name  string
	Value string
}

// Region is one node of the generated layout tree. Child order is
// serialization order.
type Region struct {
	Kind    Kind
	Element string
	ID      string
	Comment string
	Attrs   []Attr
	// Namespaces are declared on this element (root only, in practice).
	Namespaces []Attr
	Children   []*Region
}

// Add appends children and returns r for chaining.
func (r *Region) Add(children ...*Region) *Region {
	r.Children = append(r.Children, children...)
	return r
}

// Set appends an attribute.
func (r *Region) Set(name, value string) *Region {
	r.Attrs = append(r.Attrs, Attr{Name: name, Value: value})
	return r
}

// Attr returns the value of the named attribute.
func (r *Region) Attr(name string) (string, bool) {
	for _, a := range r.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Walk visits r and its descendants depth-first, pre-order. Returning false
// from fn skips the children of the visited region.
func (r *Region) Walk(fn func(*Region) bool) {
	if r == nil {
		return
	}
	if !fn(r) {
		return
	}
	for _, c := range r.Children {
		c.Walk(fn)
	}
}

// Find returns the first region with the given identifier.
func (r *Region) Find(id string) *Region {
	var found *Region
	r.Walk(func(n *Region) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns how many regions of kind k are in the tree.
func (r *Region) Count(k Kind) int {
	n := 0
	r.Walk(func(x *Region) bool {
		if x.Kind == k {
			n++
		}
		return true
	})
	return n
}
