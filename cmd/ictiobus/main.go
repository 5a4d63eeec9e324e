/*
Ictiobus compiles a lexer spec and a grammar into a one-shot parser and runs
it over a source file.

Usage:

	ictiobus [flags] LEXSPEC GRAMMAR SOURCE

The flags are:

	-v, --version
		Give the current version of ictiobus and then exit.

	-t, --dump-table
		Print the generated action/goto table before parsing.

	-c, --config FILE
		Batch mode: read a YAML manifest of {lexspec, grammar, sources: []}
		and run the same lexer/grammar pair against every listed source
		file, ignoring the positional arguments.

On success, the program prints the pre-order parse-tree sequence to stdout.
On failure, it prints the error to stderr and exits nonzero.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/internal/version"
	"github.com/dekarrin/ictiobus/lexer"
	"github.com/dekarrin/ictiobus/parse"
	"github.com/dekarrin/ictiobus/specfile"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitCompileError indicates a lexer, grammar, or table-construction
	// failure before any source was parsed.
	ExitCompileError

	// ExitParseError indicates a source file failed to parse.
	ExitParseError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	dumpTable   *bool   = pflag.BoolP("dump-table", "t", false, "Print the generated action/goto table before parsing")
	configFile  *string = pflag.StringP("config", "c", "", "Batch-mode YAML manifest of {lexspec, grammar, sources}")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *configFile != "" {
		runBatch(*configFile)
		return
	}

	args := pflag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "ERROR: expected LEXSPEC GRAMMAR SOURCE")
		returnCode = ExitCompileError
		return
	}
	runOne(args[0], args[1], args[2])
}

func runBatch(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitCompileError
		return
	}
	defer f.Close()

	manifest, err := specfile.ReadManifest(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitCompileError
		return
	}

	for _, source := range manifest.Sources {
		fmt.Printf("=== %s ===\n", source)
		runOne(manifest.LexSpec, manifest.Grammar, source)
		if returnCode != ExitSuccess {
			return
		}
	}
}

func runOne(lexSpecPath, grammarPath, sourcePath string) {
	lx, err := compileLexer(lexSpecPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		returnCode = ExitCompileError
		return
	}

	g, err := compileGrammar(grammarPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		returnCode = ExitCompileError
		return
	}

	table, err := parse.Generate(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		returnCode = ExitCompileError
		return
	}

	if *dumpTable {
		fmt.Println(table.String())
	}

	source, err := readSourceFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		returnCode = ExitCompileError
		return
	}

	scanner := lx.NewScanner(source)
	tree, err := table.Parse(scanner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		returnCode = ExitParseError
		return
	}

	fmt.Println(strings.Join(tree.PreOrder(), " "))
}

func compileLexer(path string) (*lexer.Lexer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return specfile.ReadTokenSpec(f)
}

func compileGrammar(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return specfile.ReadGrammar(f)
}

func readSourceFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return specfile.ReadSource(f)
}
