package dfamin

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	// NonAcceptingBlock names the initial block of non-accepting states.
	NonAcceptingBlock = "NA"
	// AcceptingBlock names the initial block of accepting states.
	AcceptingBlock = "A"
)

// Block is a frozen set of state indices with a name. Blocks are never modified once
// built; a split produces new blocks.
type Block struct {
	Name    string
	members *bitset.BitSet
	// first is the lowest member index; partitions are ordered by it.
	first int
}

func newBlock(name string, members *bitset.BitSet) Block {
	first, _ := members.NextSet(0)
	return Block{Name: name, members: members, first: int(first)}
}

// Size returns the number of states in the block.
func (b Block) Size() int {
	return int(b.members.Count())
}

// Contains reports whether the state with the given index is a member.
func (b Block) Contains(state int) bool {
	return b.members.Test(uint(state))
}

// Indices returns the member indices in ascending order.
func (b Block) Indices() []int {
	out := make([]int, 0, b.members.Count())
	for i, ok := b.members.NextSet(0); ok; i, ok = b.members.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Equals reports whether both blocks hold the same states; names are ignored.
func (b Block) Equals(other Block) bool {
	return b.members.Equal(other.members)
}

// memberEscaper escapes the characters blockName uses as syntax, so distinct member sets
// always render to distinct names.
var memberEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `{`, `\{`, `}`, `\}`)

// blockName renders the sorted members as "{m1,m2,...}". Separators and braces inside a
// member are backslash-escaped. The brace keeps derived names apart from
// NonAcceptingBlock and AcceptingBlock.
func blockName[S any](states []S, members *bitset.BitSet) string {
	var sb strings.Builder
	sb.WriteByte('{')
	sep := ""
	for i, ok := members.NextSet(0); ok; i, ok = members.NextSet(i + 1) {
		sb.WriteString(sep)
		memberEscaper.WriteString(&sb, fmt.Sprint(states[i]))
		sep = ","
	}
	sb.WriteByte('}')
	return sb.String()
}
