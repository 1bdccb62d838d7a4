package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gocyk/arith"
	"github.com/npillmayer/gocyk/grammar/cnf"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Print the Chomsky Normal Form of a grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := s.loadGrammar()
			if err != nil {
				return err
			}
			mode, err := s.epsilonMode()
			if err != nil {
				return err
			}
			g.Dump() // only visible in debug mode
			printRules("source grammar", g)
			pterm.Println(fmt.Sprintf("nullable: %v", cnf.Nullable(g)))
			cnfG, err := cnf.Normalize(g, cnf.WithEpsilonMode(mode))
			if err != nil {
				return err
			}
			printRules(fmt.Sprintf("CNF, empty rules %s", mode), cnfG)
			return nil
		},
	}
}

func newParseCmd(s *settings) *cobra.Command {
	var cnfTree bool
	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Recognize an arithmetic expression and print its derivation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.evalOptions()
			if err != nil {
				return err
			}
			input := strings.TrimSpace(strings.Join(args, " "))
			tracer().Infof("input is %q", input)
			r, err := arith.Evaluate(input, opts...)
			if err != nil {
				return err
			}
			if cnfTree {
				printTree("CNF derivation", r.CNFTree)
			}
			printTree("derivation", r.Tree)
			printResult(r)
			pterm.Println(r.Stats.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&cnfTree, "cnf", false, "Print the derivation of the CNF grammar, too")
	return cmd
}

func newReplCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate arithmetic expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.evalOptions()
			if err != nil {
				return err
			}
			repl, err := readline.New("gocyk> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			pterm.Info.Println("Welcome to gocyk")
			tracer().Infof("Quit with <ctrl>D")
			intp := &interpreter{opts: opts}
			for {
				line, err := repl.Readline()
				if err != nil { // io.EOF
					break
				}
				if quit := intp.eval(strings.TrimSpace(line)); quit {
					break
				}
			}
			pterm.Println("Good bye!")
			return nil
		},
	}
}

// interpreter evaluates REPL lines. Lines starting with a colon are
// commands: ":tree" toggles printing of derivations, ":quit" ends the session.
type interpreter struct {
	opts  []arith.Option
	trees bool
}

func (intp *interpreter) eval(line string) (quit bool) {
	switch line {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":tree":
		intp.trees = !intp.trees
		pterm.Info.Println(fmt.Sprintf("printing of derivations is %v", intp.trees))
		return false
	}
	r, err := arith.Evaluate(line, intp.opts...)
	if err != nil {
		if errors.Is(err, arith.ErrNoMatch) {
			pterm.Error.Println("not an arithmetic expression")
		} else {
			printError(err)
		}
		return false
	}
	if intp.trees {
		printTree("derivation", r.Tree)
	}
	printResult(r)
	return false
}

func printResult(r *arith.Result) {
	pterm.Info.Println(fmt.Sprintf("%g", r.Value))
	tracer().Infof("%s", r.Stats)
}
