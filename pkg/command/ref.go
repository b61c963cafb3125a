package command

// Ref selects a document, presentation, workbook, or sheet inside the host
// application. The front-most object is an ambient selector owned by the
// host, so it gets a dedicated variant: ActiveRef never aliases index 1,
// and index 1 never means "front-most".
type Ref struct {
	active bool
	index  int
	name   string
}

// ActiveRef selects the host application's front-most object.
func ActiveRef() Ref {
	return Ref{active: true}
}

// IndexedRef selects by 1-based position.
func IndexedRef(index int) Ref {
	return Ref{index: index}
}

// NamedRef selects by the object's name, e.g. "Budget.xlsx".
func NamedRef(name string) Ref {
	return Ref{name: name}
}

// IsZero reports whether the ref selects nothing at all. Commands that
// require an explicit target treat a zero ref as malformed.
func (r Ref) IsZero() bool {
	return !r.active && r.index == 0 && r.name == ""
}

// Active reports whether this is the front-most selector.
func (r Ref) Active() bool { return r.active }

// Index returns the 1-based position, or 0 for non-indexed refs.
func (r Ref) Index() int { return r.index }

// Name returns the name selector, or "" for non-named refs.
func (r Ref) Name() string { return r.name }

func (r Ref) validate(what string) error {
	if r.IsZero() {
		return malformed("missing %s reference", what)
	}
	if !r.active && r.name == "" {
		return requireIndex(what+" index", r.index)
	}
	return nil
}
