// Command moniker-repl is an interactive untyped lambda calculus
// evaluator built on the moniker binding library.
//
// Syntax:
//
//	\x. e            lambda abstraction (λ also accepted)
//	e1 e2            application
//	let x = e; ... in e
//
// Commands:
//
//	:fv <expr>       free variables of an expression
//	:eq <e1> == <e2> alpha-equivalence of two expressions
//	:help            usage
//	:quit            exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/heyrutvik/moniker/examples/lc"
	"github.com/heyrutvik/moniker/pkg/binder"
)

const banner = "moniker-repl: untyped lambda calculus. Type :help for help."

type styles struct {
	result lipgloss.Style
	errMsg lipgloss.Style
	info   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{result: plain, errMsg: plain, info: plain}
	}
	return styles{
		result: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		info:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	st := newStyles(cfg.Color)

	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	parser := lc.NewParser()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, st.errMsg.Render(err.Error()))
			return 1
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(input, ":") {
			if quit := command(parser, st, input); quit {
				return 0
			}
			continue
		}

		expr, err := parser.Parse(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, st.errMsg.Render(err.Error()))
			continue
		}
		fmt.Println(st.result.Render(lc.Format(lc.Eval(expr))))
	}
}

// command handles a colon command and reports whether the REPL should quit.
func command(parser *lc.Parser, st styles, input string) bool {
	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case ":quit", ":q":
		return true

	case ":help", ":h":
		fmt.Println(st.info.Render(helpText))

	case ":fv":
		expr, err := parser.Parse(rest)
		if err != nil {
			fmt.Fprintln(os.Stderr, st.errMsg.Render(err.Error()))
			return false
		}
		fmt.Println(st.result.Render(formatVarSet(binder.FreeVars(expr))))

	case ":eq":
		lhs, rhs, ok := strings.Cut(rest, "==")
		if !ok {
			fmt.Fprintln(os.Stderr, st.errMsg.Render("usage: :eq <expr> == <expr>"))
			return false
		}
		a, err := parser.Parse(strings.TrimSpace(lhs))
		if err != nil {
			fmt.Fprintln(os.Stderr, st.errMsg.Render(err.Error()))
			return false
		}
		b, err := parser.Parse(strings.TrimSpace(rhs))
		if err != nil {
			fmt.Fprintln(os.Stderr, st.errMsg.Render(err.Error()))
			return false
		}
		fmt.Println(st.result.Render(fmt.Sprintf("%v", a.TermEq(b))))

	default:
		fmt.Fprintln(os.Stderr, st.errMsg.Render("unknown command; type :help"))
	}
	return false
}

func formatVarSet(set binder.FreeVarSet) string {
	if len(set) == 0 {
		return "(none)"
	}
	vars := make([]binder.FreeVar, 0, len(set))
	for _, v := range set {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].ID < vars[j].ID })

	names := make([]string, len(vars))
	for i, v := range vars {
		if v.Hint != "" {
			names[i] = v.Hint
		} else {
			names[i] = v.String()
		}
	}
	return strings.Join(names, ", ")
}

const helpText = `expressions:
  \x. e             lambda abstraction (λ also works)
  e1 e2             application
  let x = e; y = e in e

commands:
  :fv <expr>        free variables
  :eq <e1> == <e2>  alpha-equivalence
  :help             this text
  :quit             exit`
