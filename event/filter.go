package event

// Filter decides whether an event proceeds to routing; false drops it
type Filter func(Event) bool

// AllowTypes keeps only the listed types
func AllowTypes(types ...Type) Filter {
	set := typeSet(types)
	return func(ev Event) bool { return set[ev.Type] }
}

// BlockTypes drops the listed types
func BlockTypes(types ...Type) Filter {
	set := typeSet(types)
	return func(ev Event) bool { return !set[ev.Type] }
}

// All keeps an event only if every filter keeps it
func All(filters ...Filter) Filter {
	return func(ev Event) bool {
		for _, f := range filters {
			if !f(ev) {
				return false
			}
		}
		return true
	}
}

func typeSet(types []Type) map[Type]bool {
	set := make(map[Type]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}
