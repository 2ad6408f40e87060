package formatters

// AttributeFilter decides which attributes are written out.
type AttributeFilter interface {
	Allows(name string) bool
}

type nameSet map[string]struct{}

func newNameSet(names []string) nameSet {
	set := make(nameSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s nameSet) contains(name string) bool {
	_, ok := s[name]
	return ok
}

type allowFilter struct {
	names nameSet
}

// Allow keeps only the listed attributes.
func Allow(names ...string) AttributeFilter {
	return allowFilter{names: newNameSet(names)}
}

func (f allowFilter) Allows(name string) bool {
	return f.names.contains(name)
}

type denyFilter struct {
	names nameSet
}

// Deny drops the listed attributes and keeps everything else.
func Deny(names ...string) AttributeFilter {
	return denyFilter{names: newNameSet(names)}
}

func (f denyFilter) Allows(name string) bool {
	return !f.names.contains(name)
}

type allFilter struct{}

// All keeps every attribute.
func All() AttributeFilter {
	return allFilter{}
}

func (allFilter) Allows(string) bool {
	return true
}
