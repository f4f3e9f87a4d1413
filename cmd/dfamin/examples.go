package main

import (
	"io"
	"sort"

	"github.com/geange/dfamin"
)

// example minimises one built-in automaton and renders the result to w.
type example func(w io.Writer, opts ...dfamin.Option) error

var examples = map[string]example{
	"five": func(w io.Writer, opts ...dfamin.Option) error {
		return render(w, "five", &dfamin.DFA[string, string]{
			States:   []string{"A", "B", "C", "D", "E"},
			Alphabet: []string{"0", "1"},
			Transitions: map[string]map[string]string{
				"A": {"0": "B", "1": "C"},
				"B": {"0": "B", "1": "D"},
				"C": {"0": "B", "1": "C"},
				"D": {"0": "B", "1": "E"},
				"E": {"0": "B", "1": "C"},
			},
			Accepting: []string{"E"},
		}, opts...)
	},
	"eight": func(w io.Writer, opts ...dfamin.Option) error {
		return render(w, "eight", &dfamin.DFA[string, string]{
			States:   []string{"q_0", "q_1", "q_2", "q_3", "q_4", "q_5", "q_6", "q_7"},
			Alphabet: []string{"0", "1"},
			Transitions: map[string]map[string]string{
				"q_0": {"0": "q_1", "1": "q_5"},
				"q_1": {"0": "q_6", "1": "q_2"},
				"q_2": {"0": "q_0", "1": "q_2"},
				"q_3": {"0": "q_2", "1": "q_6"},
				"q_4": {"0": "q_7", "1": "q_5"},
				"q_5": {"0": "q_2", "1": "q_6"},
				"q_6": {"0": "q_6", "1": "q_4"},
				"q_7": {"0": "q_6", "1": "q_2"},
			},
			Accepting: []string{"q_2"},
		}, opts...)
	},
	"six": func(w io.Writer, opts ...dfamin.Option) error {
		return render(w, "six", &dfamin.DFA[int, string]{
			States:   []int{0, 1, 2, 3, 4, 5},
			Alphabet: []string{"a", "b"},
			Transitions: map[int]map[string]int{
				0: {"a": 1, "b": 2},
				1: {"a": 0, "b": 3},
				2: {"a": 4, "b": 5},
				3: {"a": 4, "b": 5},
				4: {"a": 4, "b": 5},
				5: {"a": 5, "b": 5},
			},
			Accepting: []int{1, 3, 5},
		}, opts...)
	},
}

func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
