package flip

// how to treat a unitig reached twice with conflicting orientations
const (
	consistencyIgnore = "ignore"
	consistencyWarn   = "warn"
	consistencyStrict = "strict"
)

// frame is one pending DFS visit: a unitig and its proposed orientation.
type frame struct {
	unitigID int
	o        orientation
}

// pickOrientations assigns every unitig exactly one orientation by walking
// the graph one connected component at a time, orienting each component's
// root forward and propagating along edges: the orientation flips exactly
// when an edge's two tags differ. Returns the assignment and the number of
// re-visits whose proposed orientation conflicted with the assigned one.
func pickOrientations(g *dbg) ([]orientation, int) {
	n := g.unitigs.Count()
	orientations := make([]orientation, n) // forward is the zero value
	visited := make([]bool, n)

	var stack []frame // reused between components
	conflicts := 0
	nComponents := 0

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}

		nComponents++
		// the root's strand is arbitrary, pick forward
		stack = append(stack, frame{root, forward})

		componentSize := 0
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if visited[top.unitigID] {
				if orientations[top.unitigID] != top.o {
					conflicts++
				}
				continue
			}

			componentSize++
			visited[top.unitigID] = true
			orientations[top.unitigID] = top.o

			for _, e := range g.edges[top.unitigID] {
				next := top.o
				if e.fromO != e.toO {
					next = next.flip()
				}
				stack = append(stack, frame{e.to, next})
			}
		}

		stderr.Printf("Component size = %d", componentSize)
	}

	plural := ""
	if nComponents > 1 {
		plural = "s"
	}
	stderr.Printf("Found %d component%s", nComponents, plural)

	return orientations, conflicts
}
