package arguments

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const (
	flagPrefix   = "--"
	negatePrefix = "no-"
)

// Parse parses tokens, the first of which is the program name.
func Parse(tokens []string) (*Arguments, error) {
	return ParseSeq(slices.Values(tokens))
}

// ParseSeq is Parse over a token stream. Parsing stops at the first error and
// no partial result is returned.
func ParseSeq(tokens iter.Seq[string]) (*Arguments, error) {
	p := parser{args: &Arguments{options: newOptions()}}
	for token := range tokens {
		if err := p.next(token); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return p.args, nil
}

type parser struct {
	args       *Arguments
	position   int
	started    bool
	pending    string
	hasPending bool
	pendingPos int
}

func (p *parser) next(token string) error {
	defer func() { p.position++ }()

	if !p.started {
		if strings.HasPrefix(token, flagPrefix) {
			return fmt.Errorf("argument %d: %w", p.position, ErrMissingProgram)
		}
		p.args.program = token
		p.started = true
		return nil
	}

	if strings.HasPrefix(token, flagPrefix) {
		if err := p.flush(); err != nil {
			return err
		}
		name := strings.TrimPrefix(token, flagPrefix)
		if name == "" {
			return fmt.Errorf("argument %d: %w", p.position, ErrEmptyFlagName)
		}
		p.pending, p.hasPending, p.pendingPos = name, true, p.position
		return nil
	}

	if p.hasPending {
		p.args.options.add(p.pending, token)
		p.pending, p.hasPending = "", false
		return nil
	}
	p.args.orphans = append(p.args.orphans, token)
	return nil
}

func (p *parser) finish() error {
	if !p.started {
		return ErrMissingProgram
	}
	return p.flush()
}

// flush records a pending flag that received no value as a boolean.
func (p *parser) flush() error {
	if !p.hasPending {
		return nil
	}
	name := p.pending
	p.pending, p.hasPending = "", false

	if negated, ok := strings.CutPrefix(name, negatePrefix); ok {
		if negated == "" {
			return fmt.Errorf("argument %d: %w", p.pendingPos, ErrEmptyNegatedFlagName)
		}
		p.args.options.add(negated, "false")
		return nil
	}
	p.args.options.add(name, "true")
	return nil
}
