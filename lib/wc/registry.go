package wc

import "io"

// Counter consumes r to the end and returns a count
type Counter func(r io.Reader) (uint64, error)

type entry struct {
	option    Option
	name      string
	shorthand string
	usage     string
	count     Counter
}

var registry = make([]entry, 0, 4)

// register adds an option to the registry, keeping it sorted by Option so usage
// always lists them in the same order
func register(option Option, name, shorthand, usage string, count Counter) {
	for i, e := range registry {
		if e.option == option {
			registry[i] = entry{option, name, shorthand, usage, count}
			return
		}
	}
	registry = append(registry, entry{option, name, shorthand, usage, count})
	for i := len(registry) - 1; i > 0 && registry[i].option < registry[i-1].option; i-- {
		registry[i], registry[i-1] = registry[i-1], registry[i]
	}
}

func lookup(option Option) (entry, bool) {
	for _, e := range registry {
		if e.option == option {
			return e, true
		}
	}
	return entry{}, false
}

func lookupName(name string) (entry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return entry{}, false
}
