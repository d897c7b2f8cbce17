package arguments

// Options maps option names to their raw values. Names keep the order in
// which they were first seen and values keep the order in which they were
// given.
type Options struct {
	names  []string
	values map[string][]string
}

func newOptions() *Options {
	return &Options{values: map[string][]string{}}
}

func (o *Options) add(name, value string) {
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = append(o.values[name], value)
}

// Values returns a copy of every value recorded for name.
func (o *Options) Values(name string) ([]string, bool) {
	if o == nil {
		return nil, false
	}
	values, ok := o.values[name]
	if !ok || len(values) == 0 {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// Last returns the most recent value recorded for name.
func (o *Options) Last(name string) (string, bool) {
	if o == nil {
		return "", false
	}
	values := o.values[name]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Has reports whether name was given at least once.
func (o *Options) Has(name string) bool {
	_, ok := o.Last(name)
	return ok
}

// Names returns option names in first-seen order.
func (o *Options) Names() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// Len returns the number of distinct option names.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names)
}

func (o *Options) raw(name string) []string {
	if o == nil {
		return nil
	}
	return o.values[name]
}
