package scaffold

import (
	"eve/internal/scenepath"
)

// Node is a directory and its children.
type Node struct {
	Name     string
	Children []Node
}

// Sequence names a sequence and the shots to create inside it.
type Sequence struct {
	Name  string
	Shots []string
}

func dir(name string, children ...Node) Node {
	return Node{Name: name, Children: children}
}

// Template returns the project tree for the given asset categories (for
// example character, prop) and sequences.
func Template(assetCategories []string, sequences []Sequence) []Node {
	assets := make([]Node, 0, len(assetCategories))
	for _, category := range assetCategories {
		assets = append(assets, dir(scenepath.CategoryFolder(category)))
	}
	shots := make([]Node, 0, len(sequences))
	for _, seq := range sequences {
		node := dir(seq.Name)
		for _, shot := range seq.Shots {
			node.Children = append(node.Children, dir(shot))
		}
		shots = append(shots, node)
	}
	types := []Node{dir("ASSETS", assets...), dir("SHOTS", shots...)}

	return []Node{
		dir("EDIT", dir("OUT"), dir("PROJECT")),
		dir("PREP", dir("ART"), dir("SRC"), dir("PIPELINE", dir("genes"))),
		dir("PROD",
			dir("2D",
				dir("COMP", shots...),
				dir("RENDER", shots...),
			),
			dir("3D",
				dir("lib", dir("ANIMATION"), dir("MATERIALS", assets...)),
				dir("fx", types...),
				dir("caches", types...),
				dir("hda", dir("ASSETS", assets...), dir("FX", types...)),
				dir("images", shots...),
				dir("render", shots...),
				dir("scenes",
					dir("ASSETS", assets...),
					dir("SHOTS",
						dir("ANIMATION", shots...),
						dir("LAYOUT", shots...),
						dir("RENDER", shots...),
					),
					dir("FX", types...),
					dir("LOOKDEV", types...),
				),
				dir("textures", types...),
			),
		),
	}
}

// Leaves returns the slash-separated paths of every leaf directory under root
// in depth-first order.
func Leaves(root string, nodes []Node) []string {
	var leaves []string
	var walk func(prefix string, nodes []Node)
	walk = func(prefix string, nodes []Node) {
		for _, n := range nodes {
			p := prefix + scenepath.Separator + n.Name
			if len(n.Children) == 0 {
				leaves = append(leaves, p)
				continue
			}
			walk(p, n.Children)
		}
	}
	walk(root, nodes)
	return leaves
}
