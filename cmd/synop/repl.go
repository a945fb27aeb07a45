package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/synop/ast"
	"github.com/npillmayer/synop/expand"
	"github.com/pterm/pterm"
)

// runREPL starts an interactive session, where users may enter synopses.
// The normalized form of every synopsis is printed, and commands starting
// with ':' operate on the synopsis last entered.
func runREPL(input string, opts *options) error {
	initDisplay()
	pterm.Info.Println("Welcome to synop") // colored welcome message
	repl, err := readline.New("synop> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{
		repl: repl,
		opts: opts,
	}
	if input = strings.TrimSpace(input); input != "" {
		if _, err := intp.Eval(input); err != nil {
			return err
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	opts *options
	last ast.Expr // last synopsis entered, as parsed
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

const replHelp = `enter a synopsis to print its normalized form, or one of
  :raw       print the tree of the last synopsis, as parsed
  :tree      display the normalized tree of the last synopsis
  :expand    print the command lines the last synopsis denotes
  :quit      leave`

// Eval evaluates a line of input: either a command or a synopsis.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		expr, err := intp.opts.read(strings.NewReader(line))
		if err != nil {
			return false, err
		}
		intp.last = expr
		pterm.Info.Println(formatted(ast.Normalize(expr)))
		return false, nil
	}
	switch cmd := strings.Fields(line)[0]; cmd {
	case ":q", ":quit":
		return true, nil
	case ":h", ":help":
		pterm.Println(replHelp)
		return false, nil
	}
	if intp.last == nil {
		return false, fmt.Errorf("no synopsis entered yet")
	}
	switch cmd := strings.Fields(line)[0]; cmd {
	case ":raw":
		pterm.Info.Println(intp.last.String())
	case ":tree":
		n := ast.Normalize(intp.last)
		if n == nil {
			pterm.Info.Println(formatted(n))
			break
		}
		root := pterm.NewTreeFromLeveledList(leveledTree(n))
		pterm.DefaultTree.WithRoot(root).Render()
	case ":expand":
		for _, l := range intp.expansions() {
			pterm.Info.Println(l)
		}
	default:
		return false, fmt.Errorf("unknown command %s, try :help", cmd)
	}
	return false, nil
}

func (intp *Intp) expansions() []string {
	x := expand.New(expand.Unroll(intp.opts.unroll))
	seqs := x.Expand(ast.Normalize(intp.last))
	lines := make([]string, len(seqs))
	for i, seq := range seqs {
		lines[i] = fmt.Sprintf("%q", expand.Render(seq))
	}
	return lines
}

func formatted(e ast.Expr) string {
	if e == nil {
		return "(empty)"
	}
	return e.Pretty()
}

// --- Tree display ----------------------------------------------------------

// treeBuilder collects the nodes of a tree as a pterm leveled list.
type treeBuilder struct {
	ll    pterm.LeveledList
	level int
}

func leveledTree(e ast.Expr) pterm.LeveledList {
	tb := &treeBuilder{}
	e.Accept(tb)
	tracer().Debugf("|ll| = %d, ll = %v", len(tb.ll), tb.ll)
	return tb.ll
}

func (tb *treeBuilder) item(text string) {
	tb.ll = append(tb.ll, pterm.LeveledListItem{Level: tb.level, Text: text})
}

func (tb *treeBuilder) node(label string, children ...ast.Expr) interface{} {
	tb.item(label)
	tb.level++
	for _, ch := range children {
		ch.Accept(tb)
	}
	tb.level--
	return nil
}

func (tb *treeBuilder) VisitTok(t ast.Tok) interface{} {
	tb.item(t.Token.String())
	return nil
}

func (tb *treeBuilder) VisitSeq(s ast.Seq) interface{} {
	return tb.node("Seq", s...)
}

func (tb *treeBuilder) VisitOpt(o ast.Opt) interface{} {
	return tb.node("Opt", o.X)
}

func (tb *treeBuilder) VisitRepeat(r ast.Repeat) interface{} {
	return tb.node("Repeat", r.X)
}

func (tb *treeBuilder) VisitSelect(s ast.Select) interface{} {
	return tb.node("Select", s...)
}
