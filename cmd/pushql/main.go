/*
Command pushql generates the SQL for virtual schema pushdown requests.

Usage:

	pushql [options] [request.json]

The request is read from the file named by -request or the first argument, or
from standard input when neither is given or the name is "-". It may be a
single adapter request or a JSON array of pushdown requests; one statement is
printed per line.

Options:

	-request <file>     Request file
	-config <file>      YAML configuration file
	-dialect <id>       Dialect used when the request has no SQL_DIALECT property
	-catalog <name>     Catalog used when the request has no CATALOG_NAME property
	-schema <name>      Schema used when the request has no SCHEMA_NAME property
	-quote              Quote every identifier
	-respond            Print the adapter JSON response instead of bare SQL
	-capabilities       Print the capabilities of the configured dialect
	-dialects           Print the registered dialect identifiers

Environment variables with the PUSHQL_ prefix and a .env file in the working
directory override the configuration file.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zoobzio/pushql"
	"github.com/zoobzio/pushql/internal/config"
	"github.com/zoobzio/pushql/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath   string
	dialect      string
	catalog      string
	schema       string
	quote        bool
	respond      bool
	capabilities bool
	dialects     bool
	request      string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("pushql", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.request, "request", "", "request file, - for standard input")
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.dialect, "dialect", "", "default SQL dialect")
	fs.StringVar(&opts.catalog, "catalog", "", "default catalog")
	fs.StringVar(&opts.schema, "schema", "", "default schema")
	fs.BoolVar(&opts.quote, "quote", false, "quote every identifier")
	fs.BoolVar(&opts.respond, "respond", false, "print the adapter JSON response")
	fs.BoolVar(&opts.capabilities, "capabilities", false, "print the dialect capabilities")
	fs.BoolVar(&opts.dialects, "dialects", false, "print the registered dialects")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch {
	case fs.NArg() > 1:
		return nil, fmt.Errorf("expected at most one request file, got %d", fs.NArg())
	case fs.NArg() == 1 && opts.request != "":
		return nil, fmt.Errorf("request given both as -request and as an argument")
	case fs.NArg() == 1:
		opts.request = fs.Arg(0)
	}
	return opts, nil
}

// apply overlays the command line onto cfg.
func (o *options) apply(cfg *config.Config) {
	if o.dialect != "" {
		cfg.Dialect = o.dialect
	}
	if o.catalog != "" {
		cfg.Catalog = o.catalog
	}
	if o.schema != "" {
		cfg.Schema = o.schema
	}
	if o.quote {
		cfg.QuoteIdentifiers = true
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	opts.apply(cfg)

	log := logger.NewLogger("pushql", cfg.LoggerLevel())
	defer logger.Cleanup(log)

	svc := pushql.NewService(pushql.WithConfig(cfg), pushql.WithLogger(log))

	switch {
	case opts.dialects:
		for _, id := range pushql.DefaultRegistry().IDs() {
			fmt.Fprintln(stdout, id)
		}
		return 0
	case opts.capabilities:
		names, err := svc.Capabilities(pushql.SchemaMetadata{})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, strings.Join(names, "\n"))
		return 0
	}

	data, err := readRequest(opts.request, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.respond {
		out, err := svc.Respond(ctx, data)
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintln(stdout, string(out))
		return 0
	}

	sqls, err := svc.Handle(ctx, data)
	if err != nil {
		return fail(stderr, err)
	}
	for _, sql := range sqls {
		fmt.Fprintln(stdout, sql)
	}
	return 0
}

// fail reports err. Unsupported pushdowns exit with 3 so callers can fall
// back to running the query without the pushdown.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "%s: %v\n", pushql.Classify(err), err)
	if pushql.Fallback(err) {
		return 3
	}
	return 1
}

func readRequest(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
