package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/heathj/minibrowse/http"
	"github.com/heathj/minibrowse/parser"
	"github.com/heathj/minibrowse/url"
)

const (
	formatTokens = "tokens"
	formatHTML   = "html"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		stateName   string
		contextName string
		rawURL      string
		format      string
		logLevel    string
		httpInput   bool
		trace       bool
	)

	flags := pflag.NewFlagSet("minibrowse", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&stateName, "state", "s", "data", "Initial tokenizer state (data or script-data)")
	flags.StringVarP(&contextName, "context", "c", "", "Tokenize the input as the contents of this element")
	flags.StringVarP(&rawURL, "url", "u", "", "Parse an http:// URL and print its parts")
	flags.StringVarP(&format, "format", "f", formatTokens, "Output format: tokens|html")
	flags.StringVar(&logLevel, "log-level", "warning", "Log level")
	flags.BoolVar(&httpInput, "http", false, "Input is a raw HTTP response; tokenize its body")
	flags.BoolVar(&trace, "trace", false, "Log every tokenizer state transition")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "--log-level")
	}
	if trace {
		level = logrus.TraceLevel
	}
	log.SetLevel(level)

	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "host: %s\nport: %s\npath: %s\nsearchpart: %s\n", u.Host(), u.Port(), u.Path(), u.SearchPart())
		return nil
	}

	if format != formatTokens && format != formatHTML {
		return errors.Errorf("unknown output format %q", format)
	}
	state, err := parseState(stateName)
	if err != nil {
		return err
	}

	in := stdin
	if flags.NArg() > 0 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	doc := string(b)

	if httpInput {
		res, err := http.ParseResponse(doc)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"version": res.Version(),
			"status":  res.StatusCode(),
			"reason":  res.Reason(),
		}).Info("parsed http response")
		doc = res.Body()
	}

	var tokens []parser.Token
	if contextName != "" {
		tokens, err = parser.TokenizeFragment(contextName, doc, parser.WithLogger(log))
	} else {
		var p *parser.Parser
		p, err = parser.NewParser(strings.NewReader(doc), parser.WithLogger(log), parser.WithInitialState(state))
		if err == nil {
			tokens, err = p.Start()
		}
	}
	if err != nil {
		return err
	}

	if format == formatHTML {
		fmt.Fprintln(stdout, parser.SerializeTokens(tokens))
		return nil
	}
	for _, t := range tokens {
		fmt.Fprintln(stdout, t)
	}
	return nil
}

// parseState maps a name like "script-data" or "ScriptDataState" to a
// tokenizer entry state.
func parseState(name string) (parser.TokenizerState, error) {
	want := strcase.ToCamel(name)
	if !strings.HasSuffix(want, "State") {
		want += "State"
	}
	for s := parser.DataState; s <= parser.TemporaryBufferState; s++ {
		if s.String() != want {
			continue
		}
		if !s.IsEntryState() {
			return parser.DataState, errors.Errorf("tokenizer cannot start in %s", s)
		}
		return s, nil
	}
	return parser.DataState, errors.Errorf("unknown tokenizer state %q", name)
}
