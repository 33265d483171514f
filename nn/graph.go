package nn

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// ToDot renders the network topology as a graphviz document, input to output.
func (n *Network) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("N"); err != nil {
		return "", err
	}
	g.SetDir(true)

	if err := g.AddNode("N", "input", map[string]string{
		"fontname": "\"Monaco\"",
		"shape":    "plaintext",
		"label":    fmt.Sprintf("\"input (%d)\"", n.fanIn),
	}); err != nil {
		return "", err
	}

	prev := "input"
	for i, l := range n.layers {
		id := fmt.Sprintf("l%d", i)
		attrs := map[string]string{
			"fontname": "\"Monaco\"",
			"shape":    "box",
			"label":    fmt.Sprintf("\"%d: %T\"", i, l),
		}
		if err := g.AddNode("N", id, attrs); err != nil {
			return "", err
		}
		if err := g.AddEdge(prev, id, true, nil); err != nil {
			return "", err
		}
		prev = id
	}

	if err := g.AddNode("N", "output", map[string]string{
		"fontname": "\"Monaco\"",
		"shape":    "plaintext",
		"label":    fmt.Sprintf("\"output (%d)\"", n.fanOut),
	}); err != nil {
		return "", err
	}
	if err := g.AddEdge(prev, "output", true, nil); err != nil {
		return "", err
	}
	return g.String(), nil
}
