// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package normalize

import (
	cdx "github.com/CycloneDX/cyclonedx-go"
)

type Node interface {
	GetID() string
}

type GraphNode[Element Node] struct {
	ID      string
	Element Element
}

// GraphEdge is a directed link between two resolved nodes. Value is a
// constant rendering hint - the graph is unweighted in the domain sense.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// Graph is the flat node/edge view over a document's components and its
// declared dependency edges. It holds no screen coordinates - layout
// belongs to whoever renders it.
type Graph[Element Node] struct {
	Nodes []GraphNode[Element]
	Edges []GraphEdge

	// DroppedEdges counts declared (source, target) pairs whose endpoints
	// did not resolve to a known component. The source format tolerates
	// dangling references, this counter is the only signal they existed.
	DroppedEdges int

	cursors map[string]*GraphNode[Element]
}

// Lookup resolves a node by its exact identifier. A miss is a normal
// outcome, not an error.
func (graph *Graph[Element]) Lookup(id string) (*GraphNode[Element], bool) {
	node, ok := graph.cursors[id]
	return node, ok
}

func (graph *Graph[Element]) NodeCount() int {
	return len(graph.Nodes)
}

func (graph *Graph[Element]) EdgeCount() int {
	return len(graph.Edges)
}

// BuildDependencyGraph materializes one node per element unconditionally
// and one directed edge per declared (ref, dependsOn) pair. Edges whose
// source or target does not resolve are dropped silently. Parallel edges
// between the same pair are kept on purpose - a file referencing the same
// asset twice produces two links.
func BuildDependencyGraph[Element Node](elements []Element, dependencies []cdx.Dependency) *Graph[Element] {
	graph := &Graph[Element]{
		Nodes:   make([]GraphNode[Element], 0, len(elements)),
		Edges:   []GraphEdge{},
		cursors: make(map[string]*GraphNode[Element], len(elements)),
	}

	for _, element := range elements {
		node := GraphNode[Element]{
			ID:      element.GetID(),
			Element: element,
		}
		graph.Nodes = append(graph.Nodes, node)
		graph.cursors[node.ID] = &graph.Nodes[len(graph.Nodes)-1]
	}

	for _, dependency := range dependencies {
		if dependency.Dependencies == nil {
			continue
		}
		_, sourceExists := graph.cursors[dependency.Ref]
		for _, target := range *dependency.Dependencies {
			if _, targetExists := graph.cursors[target]; !sourceExists || !targetExists {
				graph.DroppedEdges++
				continue
			}
			graph.Edges = append(graph.Edges, GraphEdge{
				Source: dependency.Ref,
				Target: target,
				Value:  1,
			})
		}
	}

	return graph
}
