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

package shared

import (
	"io"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
)

// ClassifierService derives the scalar tags and risk tier of components.
// Classification is total - there is no error path, malformed input
// degrades to the unknown sentinel.
type ClassifierService interface {
	Classify(component cdx.Component) models.ClassifiedComponent
	ClassifyAll(components []cdx.Component) []models.ClassifiedComponent
}

// StatisticsService aggregates classified components into the grouped
// counts and weakness findings served to the presentation layer.
type StatisticsService interface {
	Aggregate(components []models.ClassifiedComponent) models.InventoryStatistics
}

// GraphService builds the file-to-asset dependency graph.
type GraphService interface {
	BuildGraph(components []models.ClassifiedComponent, dependencies []cdx.Dependency) *normalize.Graph[models.ClassifiedComponent]
}

// InventoryService owns the active snapshot: one loaded document plus
// its derived statistics and graph, replaced atomically on each load.
type InventoryService interface {
	LoadDocument(r io.Reader) (models.SnapshotInfo, error)
	Info() (models.SnapshotInfo, bool)
	Statistics() (models.InventoryStatistics, bool)
	DependencyGraph() (*normalize.Graph[models.ClassifiedComponent], bool)
	CryptoAssets(category string) []models.ClassifiedComponent
	Lookup(ref string) (*normalize.GraphNode[models.ClassifiedComponent], bool)
}
