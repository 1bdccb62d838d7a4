package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/gocyk/arith"
	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/gocyk/grammar/cnf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// settings shared by all sub-commands
type settings struct {
	trace   string
	epsilon string
	rules   string
	start   string
}

func main() {
	initDisplay()
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:           "gocyk",
		Short:         "Normalize grammars and recognize input with a memoized CYK recognizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setTraceLevel(traceLevel(s.trace))
			_, err := s.epsilonMode()
			return err
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&s.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.StringVar(&s.epsilon, "epsilon", "", "Handling of empty rules [drop|retain], default from config key cnf-epsilon-mode")
	flags.StringVar(&s.rules, "rules", "1", "Grammar: built-in arithmetic rules [1|2] or an EBNF file")
	flags.StringVar(&s.start, "start", arith.Start, "Start symbol of an EBNF grammar")
	root.AddCommand(newNormalizeCmd(s))
	root.AddCommand(newParseCmd(s))
	root.AddCommand(newReplCmd(s))
	return root
}

// epsilonMode returns the mode selected by flag. An empty flag selects the
// configured default.
func (s *settings) epsilonMode() (cnf.EpsilonMode, error) {
	if s.epsilon == "" {
		return cnf.DefaultEpsilonMode(), nil
	}
	return cnf.ParseEpsilonMode(s.epsilon)
}

// loadGrammar returns the grammar selected by --rules.
func (s *settings) loadGrammar() (*grammar.Grammar, error) {
	switch s.rules {
	case "1", "":
		return arith.Grammar("Rules1", arith.Rules1)
	case "2":
		return arith.Grammar("Rules2", arith.Rules2)
	}
	f, err := os.Open(s.rules)
	if err != nil {
		return nil, fmt.Errorf("cannot load grammar: %w", err)
	}
	defer f.Close()
	lm, err := arith.Lexer()
	if err != nil {
		return nil, err
	}
	name := filepath.Base(s.rules)
	return grammar.FromEBNF(name, s.rules, f, s.start, lm.Vocabulary())
}

// evalOptions collects the arith options for the flags given.
func (s *settings) evalOptions() ([]arith.Option, error) {
	g, err := s.loadGrammar()
	if err != nil {
		return nil, err
	}
	mode, err := s.epsilonMode()
	if err != nil {
		return nil, err
	}
	return []arith.Option{arith.WithGrammar(g), arith.WithEpsilonMode(mode)}, nil
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
