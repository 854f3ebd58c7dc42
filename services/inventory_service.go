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

package services

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/shared"
	"github.com/l3montree-dev/cbomlens/utils"
)

// snapshot bundles one document with everything derived from it. All
// three derived structures are pure functions of the document - a new
// load replaces the whole bundle, nothing is patched in place.
type snapshot struct {
	info         models.SnapshotInfo
	cryptoAssets []models.ClassifiedComponent
	statistics   models.InventoryStatistics
	graph        *normalize.Graph[models.ClassifiedComponent]
}

type inventoryService struct {
	classifierService shared.ClassifierService
	statisticsService shared.StatisticsService
	graphService      shared.GraphService

	mut      sync.RWMutex
	snapshot *snapshot
}

func NewInventoryService(classifierService shared.ClassifierService, statisticsService shared.StatisticsService, graphService shared.GraphService) shared.InventoryService {
	return &inventoryService{
		classifierService: classifierService,
		statisticsService: statisticsService,
		graphService:      graphService,
	}
}

// LoadDocument decodes, classifies, aggregates and builds the graph for
// a new document, then swaps it in as the active snapshot. On a parse
// failure the previous snapshot stays active - readers never observe a
// partial replacement, and never statistics of one document next to the
// graph of another.
func (s *inventoryService) LoadDocument(r io.Reader) (models.SnapshotInfo, error) {
	bom, err := normalize.DecodeCBOM(r)
	if err != nil {
		return models.SnapshotInfo{}, err
	}

	classified := s.classifierService.ClassifyAll(normalize.Components(bom))
	cryptoAssets := utils.Filter(classified, func(component models.ClassifiedComponent) bool {
		return component.Kind == models.KindData
	})
	statistics := s.statisticsService.Aggregate(classified)
	graph := s.graphService.BuildGraph(classified, normalize.Dependencies(bom))

	next := &snapshot{
		info: models.SnapshotInfo{
			ID:               uuid.New(),
			Timestamp:        normalize.Timestamp(bom),
			ComponentCount:   len(classified),
			CryptoAssetCount: len(cryptoAssets),
			EdgeCount:        graph.EdgeCount(),
			DroppedEdgeCount: graph.DroppedEdges,
		},
		cryptoAssets: cryptoAssets,
		statistics:   statistics,
		graph:        graph,
	}

	s.mut.Lock()
	s.snapshot = next
	s.mut.Unlock()

	slog.Info("committed cbom snapshot",
		"snapshotID", next.info.ID,
		"components", next.info.ComponentCount,
		"cryptoAssets", next.info.CryptoAssetCount,
		"edges", next.info.EdgeCount,
		"droppedEdges", next.info.DroppedEdgeCount)

	return next.info, nil
}

func (s *inventoryService) current() (*snapshot, bool) {
	s.mut.RLock()
	defer s.mut.RUnlock()
	return s.snapshot, s.snapshot != nil
}

func (s *inventoryService) Info() (models.SnapshotInfo, bool) {
	snap, ok := s.current()
	if !ok {
		return models.SnapshotInfo{}, false
	}
	return snap.info, true
}

func (s *inventoryService) Statistics() (models.InventoryStatistics, bool) {
	snap, ok := s.current()
	if !ok {
		return models.InventoryStatistics{}, false
	}
	return snap.statistics, true
}

func (s *inventoryService) DependencyGraph() (*normalize.Graph[models.ClassifiedComponent], bool) {
	snap, ok := s.current()
	if !ok {
		return nil, false
	}
	return snap.graph, true
}

// CryptoAssets returns the data-kind components of the active snapshot,
// optionally narrowed to one primitive category. Input order of the
// document is preserved.
func (s *inventoryService) CryptoAssets(category string) []models.ClassifiedComponent {
	snap, ok := s.current()
	if !ok {
		return []models.ClassifiedComponent{}
	}
	return FilterByPrimitive(snap.cryptoAssets, category)
}

// Lookup resolves a single graph node by identifier. A miss means the
// presentation layer shows an empty selection, nothing more.
func (s *inventoryService) Lookup(ref string) (*normalize.GraphNode[models.ClassifiedComponent], bool) {
	snap, ok := s.current()
	if !ok {
		return nil, false
	}
	return snap.graph.Lookup(ref)
}
