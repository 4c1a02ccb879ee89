// Package main provides the CLI entrypoint for tuplegen.
//
// tuplegen is a codegen tool that:
//   - Parses Go packages (AST) to find structs annotated with tuplegen directives
//   - Validates field type uniqueness for the heterogeneous strategy
//   - Generates total FromTuple constructors into the structs' own packages
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"

	"tuplegen/internal/analyze"
	"tuplegen/internal/config"
	"tuplegen/internal/gen"
	"tuplegen/internal/plan"
)

type options struct {
	Config string `short:"c" long:"config" description:"path to a YAML config file"`
	Check  bool   `long:"check" description:"verify generated files are up to date instead of writing them"`
	Debug  bool   `long:"debug" description:"dump the extracted field models"`

	Args struct {
		Patterns []string `positional-arg-name:"packages" description:"package patterns to scan (default ./...)"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tuplegen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options

	_, err := flags.ParseArgs(&opts, args)
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}

		return err
	}

	patterns := opts.Args.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	genCfg := gen.DefaultConfig()
	if opts.Config != "" {
		file, err := config.LoadFile(opts.Config)
		if err != nil {
			return err
		}

		genCfg = file.GenConfig()
	}

	models, diags, err := analyze.NewLoader().Load(patterns...)
	if err != nil {
		return err
	}

	if opts.Debug {
		spew.Dump(models)
	}

	// Structs are fully independent: one rejection never blocks
	// another struct's artifact, but any rejection fails the run.
	generator := gen.NewGenerator(genCfg)

	var files []gen.GeneratedFile

	for _, model := range models {
		mapping, diag := plan.Build(model)
		if diag != nil {
			diags.Add(*diag)

			continue
		}

		file, err := generator.Generate(mapping)
		if err != nil {
			return fmt.Errorf("generating %s: %w", model.Name, err)
		}

		files = append(files, *file)
	}

	diags.Print(os.Stderr)

	if opts.Check {
		if err := checkFiles(files); err != nil {
			return err
		}
	} else {
		if err := gen.WriteFiles(files); err != nil {
			return err
		}

		fmt.Printf("wrote %d file(s)\n", len(files))
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d struct(s) rejected", len(diags.Errors))
	}

	return nil
}

func checkFiles(files []gen.GeneratedFile) error {
	stale, err := gen.CheckFiles(files)
	if err != nil {
		return err
	}

	if len(stale) > 0 {
		for _, s := range stale {
			fmt.Fprintf(os.Stderr, "stale: %s\n%s\n", s.Path, s.Diff)
		}

		return fmt.Errorf("%d generated file(s) out of date", len(stale))
	}

	fmt.Printf("%d generated file(s) up to date\n", len(files))

	return nil
}
