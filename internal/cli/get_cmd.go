package cli

import (
	"fmt"
	"net/netip"
	"time"

	"github.com/sasanktumpati/argv/arguments"
	"github.com/sasanktumpati/argv/internal/render"
)

var lookupTypes = []string{"string", "bool", "int", "uint", "float", "duration", "ip"}

func (a *App) runGet(args []string) error {
	if a.showTopicHelpIfRequested("get", args, 0) {
		return nil
	}
	if len(args) != 2 {
		return usageError("get", `argv get "<command line>" <name> [--type <type>] [--all]`)
	}
	opts, err := parseGetArgs(a.args)
	if err != nil {
		return err
	}

	report, err := explainLine(args[0])
	if err != nil {
		return err
	}
	if report.Err != nil {
		return report.Err
	}

	value, found, err := lookupValue(report.Args, args[1], opts)
	if err != nil {
		return err
	}
	if !found {
		value = nil
	}
	return render.WriteLookup(a.stdout, render.Lookup{
		Name:  args[1],
		Type:  opts.Type,
		All:   opts.All,
		Found: found,
		Value: value,
	}, a.reportOptions())
}

func lookupValue(args *arguments.Arguments, name string, opts getOptions) (any, bool, error) {
	switch opts.Type {
	case "string":
		return pick[string](args, name, opts.All)
	case "bool":
		return pick[bool](args, name, opts.All)
	case "int":
		return pick[int64](args, name, opts.All)
	case "uint":
		return pick[uint64](args, name, opts.All)
	case "float":
		return pick[float64](args, name, opts.All)
	case "duration":
		if opts.All {
			values, ok := arguments.GetAll[time.Duration](args, name)
			if !ok {
				return nil, false, nil
			}
			out := make([]string, len(values))
			for i, d := range values {
				out[i] = d.String()
			}
			return out, true, nil
		}
		d, ok := arguments.Get[time.Duration](args, name)
		if !ok {
			return nil, false, nil
		}
		return d.String(), true, nil
	case "ip":
		if opts.All {
			values, ok := arguments.GetAllText[netip.Addr](args, name)
			return values, ok, nil
		}
		addr, ok := arguments.GetText[netip.Addr](args, name)
		return addr, ok, nil
	default:
		return nil, false, fmt.Errorf("unknown type %q (want one of %v)", opts.Type, lookupTypes)
	}
}

func pick[T arguments.Value](args *arguments.Arguments, name string, all bool) (any, bool, error) {
	if all {
		values, ok := arguments.GetAll[T](args, name)
		return values, ok, nil
	}
	value, ok := arguments.Get[T](args, name)
	return value, ok, nil
}
