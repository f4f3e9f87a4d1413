package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/geange/dfamin"
)

var (
	titleStyle  = color.New(color.FgCyan, color.Bold)
	acceptStyle = color.New(color.FgGreen, color.Bold)
	labelStyle  = color.New(color.FgYellow)
)

// render minimises d and prints the blocks, accepting blocks and transition table.
func render[S, L cmp.Ordered](w io.Writer, name string, d *dfamin.DFA[S, L], opts ...dfamin.Option) error {
	m, err := dfamin.Minimize(d, opts...)
	if err != nil {
		return fmt.Errorf("minimize %s: %w", name, err)
	}

	titleStyle.Fprintf(w, "%s: %d states -> %d states (%d passes)\n", name, len(d.States), len(m.States), m.Passes)

	for _, block := range m.States {
		style := labelStyle
		if m.IsAccept(block) {
			style = acceptStyle
		}
		style.Fprintf(w, "  %s", block)
		fmt.Fprintf(w, " = %v\n", m.Blocks[block])
	}

	for _, block := range m.States {
		fmt.Fprintf(w, "  %s:", block)
		for _, symbol := range m.Alphabet() {
			fmt.Fprintf(w, " %v->%s", symbol, m.Transitions[block][symbol])
		}
		fmt.Fprintln(w)
	}
	return nil
}
