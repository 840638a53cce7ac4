// Package maze provides the static maze graph, its loaders, and the
// shortest-path engine that routes the rat between locations.
package maze

import "fmt"

// Node is one of the seven fixed maze locations. The two annexes are
// reserved slots in the on-disk format; the stock maze leaves them
// disconnected.
type Node uint8

const (
	Exit     Node = iota // E — entrance/exit vestibule
	Nest                 // N — refills sleep
	Food                 // F — refills hunger
	AnnexA               // A — reserved
	Wheel                // W — refills fun
	AnnexB               // B — reserved
	Medicine             // M — refills health
)

// NodeCount is the number of maze locations, annexes included.
const NodeCount = 7

var nodeLetters = [NodeCount]byte{'E', 'N', 'F', 'A', 'W', 'B', 'M'}

var nodeNames = [NodeCount]string{
	"exit",
	"nest",
	"food bowl",
	"annex A",
	"exercise wheel",
	"annex B",
	"medicine dispenser",
}

// ParseNode maps a single-character node letter to its Node.
func ParseNode(c byte) (Node, error) {
	for i, l := range nodeLetters {
		if l == c {
			return Node(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNode, string(c))
}

// Letter returns the single-character on-disk form of the node.
func (n Node) Letter() byte {
	return nodeLetters[n]
}

// String returns the human-readable location name.
func (n Node) String() string {
	if int(n) >= NodeCount {
		return fmt.Sprintf("node(%d)", uint8(n))
	}
	return nodeNames[n]
}
