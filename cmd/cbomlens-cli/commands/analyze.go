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

func NewAnalyzeCommand() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze <cbom.json>",
		Short: "Classify a CBOM and aggregate its cryptographic inventory",
		Long: `Decodes a CycloneDX CBOM document, classifies every cryptographic asset
and prints the aggregated inventory statistics: primitive, provider,
classification and operation breakdowns plus any declared weaknesses.

Examples:
  cbomlens-cli analyze cbom.json
  cbomlens-cli analyze --primitive hash cbom.json
  cbomlens-cli analyze --json cbom.json`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	analyzeCmd.Flags().Bool("json", false, "Emit the statistics as JSON instead of tables")
	analyzeCmd.Flags().String("primitive", models.AllPrimitives, "Only list assets of this primitive category in the asset table")

	return analyzeCmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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
	statistics := services.NewStatisticsService().Aggregate(classified)

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(transformer.StatisticsModelToDTO(statistics))
	}

	primitive, err := cmd.Flags().GetString("primitive")
	if err != nil {
		return err
	}
	if primitive == "" {
		primitive = models.AllPrimitives
	}

	cryptoAssets := services.FilterByPrimitive(filterDataKind(classified), primitive)

	printAssets(cryptoAssets)
	printStatistics(statistics)
	return nil
}

func filterDataKind(components []models.ClassifiedComponent) []models.ClassifiedComponent {
	filtered := make([]models.ClassifiedComponent, 0, len(components))
	for _, component := range components {
		if component.Kind == models.KindData {
			filtered = append(filtered, component)
		}
	}
	return filtered
}

func tierColor(tier models.RiskTier) text.Color {
	switch tier {
	case models.TierRed:
		return text.FgRed
	case models.TierGreen:
		return text.FgGreen
	case models.TierBlue:
		return text.FgBlue
	default:
		return text.FgHiBlack
	}
}

func printAssets(cryptoAssets []models.ClassifiedComponent) {
	fmt.Println(text.FgHiCyan.Sprint("\nCRYPTOGRAPHIC ASSETS"))
	fmt.Println(strings.Repeat("─", 60))

	if len(cryptoAssets) == 0 {
		fmt.Println("no cryptographic assets found")
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Name", "Primitive", "Provider", "Classification", "Operation", "Tier"})
	for _, asset := range cryptoAssets {
		tw.AppendRow(table.Row{
			asset.GetName(),
			asset.Primitive,
			asset.Provider,
			asset.Classification,
			asset.Operation,
			tierColor(asset.Tier).Sprint(asset.Tier),
		})
	}
	fmt.Println(tw.Render())
}
