// sdrparams reads and updates the parameter table of a software defined radio.
//
// Without --get, --set or --list it runs the demo sequence: read ch0
// frequency, set it to 440 MHz, read it back, then try to set it to a text
// value, which the store rejects.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/sdr-params/internal/config"
	"github.com/sdr-params/internal/logging"
	"github.com/sdr-params/internal/params"
	"github.com/sdr-params/internal/state"
)

// errFailed is returned when at least one requested operation was rejected
var errFailed = errors.New("one or more operations failed")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	gets       []string
	sets       []string
	list       bool
	demo       bool
}

func run(args []string, stdout io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("sdrparams", pflag.ContinueOnError)
	flagSet.SetOutput(stdout)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "configuration file (.yaml or .toml)")
	flagSet.StringArrayVarP(&opts.gets, "get", "g", nil, "read a parameter (repeatable)")
	flagSet.StringArrayVarP(&opts.sets, "set", "s", nil, "set a parameter as key=value (repeatable)")
	flagSet.BoolVarP(&opts.list, "list", "l", false, "list every parameter")
	flagSet.BoolVar(&opts.demo, "demo", false, "run the demo sequence")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logging.Close(logger)

	radio := state.NewRadioState(params.WithLogger(logger))
	out := newPrinter(stdout)
	failed := false

	for _, o := range radio.Apply(cfg.Parameters) {
		if o.Result.IsErr() {
			err := o.Result.UnwrapErr()
			logger.WithFields(log.Fields{"key": o.Key, "kind": err.Kind.String()}).Warn("config parameter rejected")
			out.err(fmt.Sprintf("config %s", o.Key), err)
			failed = true
		}
	}

	if len(opts.gets) == 0 && len(opts.sets) == 0 && !opts.list {
		opts.demo = true
	}

	if opts.demo {
		if !runDemo(radio, out) {
			failed = true
		}
	}

	for _, raw := range opts.sets {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, want key=value", raw)
		}
		if !set(radio, out, key, inferValue(value)) {
			failed = true
		}
	}

	for _, key := range opts.gets {
		if !get(radio, out, key) {
			failed = true
		}
	}

	if opts.list {
		list(radio, out)
	}

	if failed {
		return errFailed
	}
	return nil
}

// inferValue types a command line literal: the four boolean spellings become
// bool, float literals become float64 and anything else stays text
func inferValue(raw string) interface{} {
	switch raw {
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func set(radio *state.RadioState, out *printer, key string, value interface{}) bool {
	label := fmt.Sprintf("%s <= %v", key, formatValue(value))
	r := radio.Set(key, value)
	if r.IsErr() {
		out.err(label, r.UnwrapErr())
		return false
	}
	out.ok(label, "Ok..")
	return true
}

func get(radio *state.RadioState, out *printer, key string) bool {
	label := fmt.Sprintf("%s ->", key)

	def := radio.Describe(key)
	if def.IsErr() {
		out.err(label, def.UnwrapErr())
		return false
	}

	var text string
	var perr *params.Error
	switch def.Unwrap().Type {
	case params.TypeDouble:
		r := radio.GetDouble(key)
		r.Match(func(v float64) { text = formatValue(v) }, func(e *params.Error) { perr = e })
	case params.TypeBool:
		r := radio.GetBool(key)
		r.Match(func(v bool) { text = strconv.FormatBool(v) }, func(e *params.Error) { perr = e })
	default:
		r := radio.GetString(key)
		r.Match(func(v string) { text = v }, func(e *params.Error) { perr = e })
	}

	if perr != nil {
		out.err(label, perr)
		return false
	}
	out.ok(label, text)
	return true
}

func list(radio *state.RadioState, out *printer) {
	for _, key := range radio.Keys() {
		def := radio.Describe(key).Unwrap()
		bounds := ""
		if def.Type == params.TypeDouble {
			bounds = "unchecked"
			if def.Min != 0 && def.Max != 0 {
				bounds = fmt.Sprintf("[%s, %s]", formatValue(def.Min), formatValue(def.Max))
			}
		}
		out.row(key, def.Type.String(), def.Text, bounds)
	}
}

// runDemo walks through a read, an accepted set, a read back and a rejected
// set of ch0_frequency
func runDemo(radio *state.RadioState, out *printer) bool {
	const key = "ch0_frequency"

	steps := []bool{
		get(radio, out, key),
		set(radio, out, key, 440000000.0),
		get(radio, out, key),
	}
	// the key is numeric, so the store refuses text
	set(radio, out, key, "Mooo")

	for _, ok := range steps {
		if !ok {
			return false
		}
	}
	return true
}

func formatValue(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

type printer struct {
	w     io.Writer
	green *color.Color
	red   *color.Color
	cyan  *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
		cyan:  color.New(color.FgCyan),
	}
}

func (p *printer) ok(label, msg string) {
	fmt.Fprintf(p.w, "%s ", label)
	p.green.Fprintln(p.w, msg)
}

func (p *printer) err(label string, e *params.Error) {
	fmt.Fprintf(p.w, "%s ", label)
	p.red.Fprintf(p.w, "failed (%v)\n", e.Kind)
	fmt.Fprintf(p.w, "   -- Error Message: %s\n", e.Message)
}

func (p *printer) row(key, typ, value, bounds string) {
	p.cyan.Fprintf(p.w, "%-22s", key)
	fmt.Fprintf(p.w, " %-6s %-12s %s\n", typ, value, bounds)
}
