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
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/utils"
)

func classificationColor(classification string) text.Color {
	switch classification {
	case normalize.ClassificationQuantumVulnerable:
		return text.FgRed
	case normalize.ClassificationSymmetricSafe:
		return text.FgGreen
	default:
		return text.FgHiBlack
	}
}

func appendBreakdown(tw table.Writer, dimension string, counts map[string]int, colorize func(string) text.Color) {
	for _, key := range utils.SortedKeys(counts) {
		label := key
		if colorize != nil {
			label = colorize(key).Sprint(key)
		}
		tw.AppendRow(table.Row{dimension, label, counts[key]})
	}
	tw.AppendSeparator()
}

func printStatistics(statistics models.InventoryStatistics) {
	fmt.Println(text.FgHiCyan.Sprint("\nINVENTORY STATISTICS"))
	fmt.Println(strings.Repeat("─", 60))

	summaryTable := table.NewWriter()
	summaryTable.SetStyle(table.StyleLight)
	summaryTable.AppendRow(table.Row{"Cryptographic assets", "", statistics.Total})
	summaryTable.AppendSeparator()
	appendBreakdown(summaryTable, "Primitive", statistics.ByPrimitive, nil)
	appendBreakdown(summaryTable, "Provider", statistics.ByProvider, nil)
	appendBreakdown(summaryTable, "Classification", statistics.ByClassification, classificationColor)
	appendBreakdown(summaryTable, "Operation", statistics.ByOperation, nil)
	fmt.Println(summaryTable.Render())

	if len(statistics.Weaknesses) == 0 {
		return
	}

	fmt.Println(text.FgHiYellow.Sprint("\nWEAKNESSES"))
	fmt.Println(strings.Repeat("─", 60))

	weaknessTable := table.NewWriter()
	weaknessTable.SetStyle(table.StyleLight)
	weaknessTable.AppendHeader(table.Row{"Component", "Weakness", "Location"})
	for _, finding := range statistics.Weaknesses {
		weaknessTable.AppendRow(table.Row{
			finding.ComponentName,
			text.WrapText(finding.Description, 60),
			finding.Location,
		})
	}
	fmt.Println(weaknessTable.Render())
}
