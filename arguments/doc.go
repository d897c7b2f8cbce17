// Package arguments parses command-line tokens into a program name, a table
// of named options, and a list of orphan tokens.
//
// The grammar is deliberately small:
//
//	foo --no-bar --baz 42 --baz 69 --qux "Hello, world!" extra
//
// The first token is the program. A token starting with "--" names an option.
// The next token, if it does not start with "--", becomes that option's value.
// An option with no value is recorded as "true", or as "false" when its name
// starts with "no-" (the prefix is removed). Repeating an option appends to its
// values. Any other token is an orphan.
//
// Stored values are always text. The generic accessors Get and GetAll convert
// them on demand:
//
//	args, err := arguments.Parse(os.Args)
//	if err != nil {
//		return err
//	}
//	bar, _ := arguments.Get[bool](args, "bar")       // false
//	baz, _ := arguments.Get[int](args, "baz")        // 69, the last one wins
//	all, _ := arguments.GetAll[int](args, "baz")     // [42 69]
//	qux, _ := arguments.Get[string](args, "qux")     // "Hello, world!"
package arguments
