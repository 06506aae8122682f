package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"github.com/condio/datline/internal/exc"
	"github.com/condio/datline/internal/grammar"
	"github.com/condio/datline/internal/record"
)

type opts struct {
	Grammar  string
	Docs     bool
	Defaults bool
	Dump     bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("datline", pflag.PanicOnError)
	flags.StringVar(&op.Grammar, "grammar", "", "YAML grammar file describing the records.")
	flags.BoolVar(&op.Docs, "docs", false, "Render the grammar documentation and exit.")
	flags.BoolVar(&op.Defaults, "defaults", false, "Render an example line per record and exit.")
	flags.BoolVar(&op.Dump, "dump", false, "Dump every parsed record container.")
	_ = flags.Parse(os.Args[1:])
	inputs := flags.Args()

	if op.Grammar == "" {
		fmt.Fprintln(os.Stderr, "missing required --grammar")
		os.Exit(2)
	}
	data, err := os.ReadFile(op.Grammar)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	definitions, err := grammar.Parse(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if op.Docs {
		for _, def := range definitions {
			def.Describe(os.Stdout)
			fmt.Println(def.DocLine())
		}
		return
	}
	if op.Defaults {
		for _, def := range definitions {
			fmt.Println(def.DefaultLine())
		}
		return
	}

	byKeyword := make(map[string]*record.Definition, len(definitions))
	for _, def := range definitions {
		byKeyword[def.Keyword()] = def
	}

	reporter := exc.NewReporter(exc.UserInputCodes)
	for _, input := range inputs {
		if err := validateFile(input, byKeyword, reporter, op.Dump); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	reported := reporter.Reported()
	for _, e := range reported {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(reported) > 0 {
		os.Exit(1)
	}
}

func validateFile(path string, byKeyword map[string]*record.Definition, reporter exc.Reporter, dump bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		keyword, rest, _ := strings.Cut(line, " ")
		def, ok := byKeyword[keyword]
		if !ok {
			e := exc.Newf(exc.Location{Section: path, Token: keyword},
				exc.CodeUnknownKeyword, "%s:%d: unknown record keyword %q", path, lineNo, keyword)
			if reporter.Report(e) != nil {
				return nil
			}
			continue
		}
		parsed, err := def.Parse(rest)
		if err != nil {
			e, ok := err.(exc.Exception)
			if !ok {
				e = exc.WrapUnknown(exc.Location{Section: path}, err)
			}
			if reporter.Report(e) != nil {
				return nil
			}
			continue
		}
		if dump {
			fmt.Printf("%s:%d %s\n", path, lineNo, keyword)
			for _, name := range parsed.Names() {
				value, _ := parsed.Value(name)
				fmt.Printf("  %s = %s", name, spew.Sdump(value))
			}
		}
	}
	return scanner.Err()
}
