package h5walk

// PlanKind tags the shape of the output an export will produce.
type PlanKind int

const (
	// PlanSingleDataset exports one dataset to one file.
	PlanSingleDataset PlanKind = iota
	// PlanFlatGroup exports a group whose children are all datasets to one
	// combined file.
	PlanFlatGroup
	// PlanMixedGroup exports a group with both dataset and group children:
	// one combined file for the direct datasets plus one subdirectory per
	// subgroup.
	PlanMixedGroup
	// PlanNestedGroup exports a group with only group children (possibly
	// none) to a directory tree. An empty group yields an empty directory.
	PlanNestedGroup
)

// String returns the plan kind name.
func (k PlanKind) String() string {
	switch k {
	case PlanSingleDataset:
		return "single-dataset"
	case PlanFlatGroup:
		return "flat-group"
	case PlanMixedGroup:
		return "mixed-group"
	default:
		return "nested-group"
	}
}

// Plan describes how one node maps to output artifacts. It is derived and
// ephemeral: computed per export invocation, before any I/O.
type Plan struct {
	Kind      PlanKind
	Node      Node
	Datasets  []Node
	Subgroups []Node
}

// Classify decides the output shape for a node given its already-listed
// children. The decision is purely structural, a function of the dataset
// and subgroup counts, so the artifact layout is predictable from the
// container's structure alone. Children are ignored for dataset nodes.
func Classify(n Node, children []Node) Plan {
	if n.IsDataset() {
		return Plan{Kind: PlanSingleDataset, Node: n}
	}
	p := Plan{Node: n}
	for _, c := range children {
		if c.IsDataset() {
			p.Datasets = append(p.Datasets, c)
		} else {
			p.Subgroups = append(p.Subgroups, c)
		}
	}
	switch {
	case len(p.Datasets) > 0 && len(p.Subgroups) > 0:
		p.Kind = PlanMixedGroup
	case len(p.Datasets) > 0:
		p.Kind = PlanFlatGroup
	default:
		p.Kind = PlanNestedGroup
	}
	return p
}

// Plan lists the node's children through the tree and classifies it.
func (t *Tree) Plan(n Node) (Plan, error) {
	if n.IsDataset() {
		return Classify(n, nil), nil
	}
	children, err := t.Children(n.Path)
	if err != nil {
		return Plan{}, err
	}
	return Classify(n, children), nil
}
