package dfamin

import (
	"math/rand/v2"
)

// fiveStateDFA is the A..E automaton over {0,1} accepting E.
func fiveStateDFA() *DFA[string, string] {
	return &DFA[string, string]{
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
	}
}

// sixStateDFA is the 0..5 automaton over {a,b} accepting 1, 3 and 5.
func sixStateDFA() *DFA[int, string] {
	return &DFA[int, string]{
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
	}
}

// eightStateDFA is the q_0..q_7 automaton over {0,1} accepting q_2.
func eightStateDFA() *DFA[string, string] {
	return &DFA[string, string]{
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
	}
}

// randomDFA returns a complete DFA with numStates states over numSymbols runes starting
// at 'a'. Roughly a third of the states accept.
func randomDFA(rng *rand.Rand, numStates, numSymbols int) *DFA[int, rune] {
	d := &DFA[int, rune]{
		Transitions: make(map[int]map[rune]int, numStates),
	}
	for l := 0; l < numSymbols; l++ {
		d.Alphabet = append(d.Alphabet, rune('a'+l))
	}
	for s := 0; s < numStates; s++ {
		d.States = append(d.States, s)
		if rng.IntN(3) == 0 {
			d.Accepting = append(d.Accepting, s)
		}
		row := make(map[rune]int, numSymbols)
		for _, l := range d.Alphabet {
			row[l] = rng.IntN(numStates)
		}
		d.Transitions[s] = row
	}
	return d
}

// randomWord returns a word of up to maxLen symbols drawn from alphabet.
func randomWord[L any](rng *rand.Rand, alphabet []L, maxLen int) []L {
	word := make([]L, rng.IntN(maxLen+1))
	for i := range word {
		word[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return word
}
