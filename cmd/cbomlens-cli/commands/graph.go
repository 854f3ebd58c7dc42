// Copyright (C) 2025 l3montree GmbH
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

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/services"
	"github.com/l3montree-dev/cbomlens/transformer"
)

func NewGraphCommand() *cobra.Command {
	graphCmd := &cobra.Command{
		Use:   "graph <cbom.json>",
		Short: "Build and print the dependency graph of a CBOM",
		Long: `Decodes a CycloneDX CBOM document and builds the dependency graph over
all its components. Edges whose endpoints do not resolve to a component
are dropped and counted.

Examples:
  cbomlens-cli graph cbom.json
  cbomlens-cli graph --json cbom.json`,
		Args: cobra.ExactArgs(1),
		RunE: runGraph,
	}

	graphCmd.Flags().Bool("json", false, "Emit the graph as JSON instead of tables")

	return graphCmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "could not open cbom document")
	}
	defer file.Close() // nolint: errcheck

	bom, err := normalize.DecodeCBOM(file)
	if err != nil {
		return errors.Wrap(err, "could not decode cbom document")
	}

	classifier := services.NewClassifierService()
	classified := classifier.ClassifyAll(normalize.Components(bom))
	graph := services.NewGraphService().BuildGraph(classified, normalize.Dependencies(bom))

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(transformer.GraphModelToDTO(graph))
	}

	fmt.Println(text.FgHiCyan.Sprint("\nDEPENDENCY GRAPH"))
	fmt.Println(strings.Repeat("─", 60))

	summaryTable := table.NewWriter()
	summaryTable.SetStyle(table.StyleLight)
	summaryTable.AppendRows([]table.Row{
		{"Nodes", graph.NodeCount()},
		{"Edges", graph.EdgeCount()},
		{"Dropped edges", graph.DroppedEdges},
	})
	fmt.Println(summaryTable.Render())

	if graph.EdgeCount() == 0 {
		return nil
	}

	edgeTable := table.NewWriter()
	edgeTable.SetStyle(table.StyleLight)
	edgeTable.AppendHeader(table.Row{"Source", "Target"})
	for _, edge := range graph.Edges {
		source := edgeLabel(graph, edge.Source)
		target := edgeLabel(graph, edge.Target)
		edgeTable.AppendRow(table.Row{source, target})
	}
	fmt.Println(edgeTable.Render())

	return nil
}

func edgeLabel(graph *normalize.Graph[models.ClassifiedComponent], ref string) string {
	node, ok := graph.Lookup(ref)
	if !ok {
		return ref
	}
	label := node.Element.GetName()
	if node.Element.Kind == models.KindData {
		label = tierColor(node.Element.Tier).Sprint(label)
	}
	return label
}
