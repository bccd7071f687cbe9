package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	jc "github.com/reoring/jsoncodable"
	"github.com/reoring/jsoncodable/source/cbor"
	"github.com/reoring/jsoncodable/source/gojson"
	stdjson "github.com/reoring/jsoncodable/source/json"
	"github.com/reoring/jsoncodable/source/msgpack"
	"github.com/reoring/jsoncodable/source/toml"
	"github.com/reoring/jsoncodable/source/yaml"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errUsage signals that usage has already been printed.
var errUsage = errors.New("usage")

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "get":
		err = getCmd(args[1:], stdin, stdout, stderr)
	case "convert":
		err = convertCmd(args[1:], stdin, stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "jsoncodable CLI\n\nUsage:\n  jsoncodable get [--from FORMAT] [--type TYPE] [--elem TYPE] [--required] [--best-effort] PATH [FILE]\n  jsoncodable convert [--from FORMAT] [--to FORMAT] [FILE]\n\nFormats: "+strings.Join(driverNames(), ", ")+"\nTypes: any, string, int, float, bool, object, array")
}

var drivers = map[string]jc.JSONDriver{
	"json":     gojson.Driver(),
	"std-json": stdjson.Driver(),
	"yaml":     yaml.Driver(),
	"msgpack":  msgpack.Driver(),
	"cbor":     cbor.Driver(),
	"toml":     toml.Driver(),
}

func driverNames() []string {
	names := make([]string, 0, len(drivers))
	for n := range drivers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func lookupDriver(name string) (jc.JSONDriver, error) {
	d, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(driverNames(), ", "))
	}
	return d, nil
}

func getCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("get", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "json", "input format")
	typ := fs.StringP("type", "t", "any", "shape to decode the value with")
	required := fs.Bool("required", false, "fail when the value is missing")
	elem := fs.String("elem", "any", "element shape for --type array")
	bestEffort := fs.Bool("best-effort", false, "drop array elements that fail to decode")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return errUsage
	}
	logger, err := newLogger(*logLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	drv, err := lookupDriver(*from)
	if err != nil {
		return err
	}
	root, err := readDocument(drv, fs.Args()[1:], stdin, logger)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	d := jc.NewDecoder(root, jc.DecodeOptions{Logger: logger})
	var out any
	switch *typ {
	case "any":
		out, err = lookup(d, path, jc.Any(), *required)
	case "string":
		out, err = lookup(d, path, jc.String(), *required)
	case "int":
		out, err = lookup(d, path, jc.Int64(), *required)
	case "float":
		out, err = lookup(d, path, jc.Float64(), *required)
	case "bool":
		out, err = lookup(d, path, jc.Bool(), *required)
	case "object":
		out, err = lookup(d, path, jc.Object(), *required)
	case "array":
		out, err = lookupArray(d, path, *elem, *required, *bestEffort)
	default:
		return fmt.Errorf("unknown type %q", *typ)
	}
	if err != nil {
		return err
	}
	b, err := jc.MarshalWith(gojson.Driver(), out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(b))
	return err
}

func lookup[T any](d *jc.Decoder, path string, shape jc.Shape[T], required bool) (any, error) {
	if required {
		return jc.Decode(d, path, shape)
	}
	v, err := jc.DecodeOptional(d, path, shape)
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}

func lookupArray(d *jc.Decoder, path, elem string, required, bestEffort bool) (any, error) {
	switch elem {
	case "any":
		return lookup(d, path, arrayOf(jc.Any(), bestEffort), required)
	case "string":
		return lookup(d, path, arrayOf(jc.String(), bestEffort), required)
	case "int":
		return lookup(d, path, arrayOf(jc.Int64(), bestEffort), required)
	case "float":
		return lookup(d, path, arrayOf(jc.Float64(), bestEffort), required)
	case "bool":
		return lookup(d, path, arrayOf(jc.Bool(), bestEffort), required)
	case "object":
		return lookup(d, path, arrayOf(jc.Object(), bestEffort), required)
	}
	return nil, fmt.Errorf("unknown element type %q", elem)
}

func arrayOf[E any](elem jc.Shape[E], bestEffort bool) *jc.ArrayShape[E] {
	arr := jc.Array(elem)
	if bestEffort {
		arr = arr.BestEffort()
	}
	return arr
}

func convertCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "json", "input format")
	to := fs.String("to", "json", "output format")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}
	logger, err := newLogger(*logLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	in, err := lookupDriver(*from)
	if err != nil {
		return err
	}
	out, err := lookupDriver(*to)
	if err != nil {
		return err
	}
	root, err := readDocument(in, fs.Args(), stdin, logger)
	if err != nil {
		return err
	}
	b, err := jc.MarshalWith(out, root)
	if err != nil {
		return err
	}
	logger.Debug("converted document", zap.String("from", in.Name()), zap.String("to", out.Name()), zap.Int("bytes", len(b)))
	_, err = stdout.Write(b)
	return err
}

// readDocument parses the file named in args, or stdin when args is empty.
func readDocument(drv jc.JSONDriver, args []string, stdin io.Reader, logger *zap.Logger) (any, error) {
	var (
		data []byte
		err  error
		name = "<stdin>"
	)
	if len(args) > 0 {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	logger.Debug("parsing document", zap.String("source", name), zap.String("driver", drv.Name()), zap.Int("bytes", len(data)))
	return jc.ParseWith(drv, data)
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}
