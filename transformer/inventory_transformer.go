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

package transformer

import (
	"github.com/l3montree-dev/cbomlens/dtos"
	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/utils"
)

func ComponentModelToDTO(component models.ClassifiedComponent) dtos.ComponentDTO {
	return dtos.ComponentDTO{
		Ref:            component.Component.BOMRef,
		Name:           component.Component.Name,
		Kind:           string(component.Kind),
		Primitive:      component.Primitive,
		Provider:       component.Provider,
		Classification: component.Classification,
		Operation:      component.Operation,
		Tier:           string(component.Tier),
		OutboundImpact: component.OutboundImpact,
	}
}

func ComponentModelsToDTOs(components []models.ClassifiedComponent) []dtos.ComponentDTO {
	return utils.Map(components, ComponentModelToDTO)
}

func ComponentModelToDetailDTO(component models.ClassifiedComponent) dtos.ComponentDetailDTO {
	detail := dtos.ComponentDetailDTO{
		ComponentDTO: ComponentModelToDTO(component),
		Properties:   component.Properties,
		Hashes:       []dtos.HashDTO{},
		Occurrences:  []dtos.OccurrenceDTO{},
	}

	if component.Component.Hashes != nil {
		for _, hash := range *component.Component.Hashes {
			detail.Hashes = append(detail.Hashes, dtos.HashDTO{
				Algorithm: string(hash.Algorithm),
				Content:   hash.Value,
			})
		}
	}

	if component.Component.Evidence != nil && component.Component.Evidence.Occurrences != nil {
		for _, occurrence := range *component.Component.Evidence.Occurrences {
			detail.Occurrences = append(detail.Occurrences, dtos.OccurrenceDTO{
				File:    occurrence.Location,
				Line:    occurrence.Line,
				Snippet: occurrence.AdditionalContext,
			})
		}
	}

	return detail
}

func StatisticsModelToDTO(statistics models.InventoryStatistics) dtos.StatisticsDTO {
	return dtos.StatisticsDTO{
		Total:            statistics.Total,
		ByPrimitive:      statistics.ByPrimitive,
		ByProvider:       statistics.ByProvider,
		ByClassification: statistics.ByClassification,
		ByOperation:      statistics.ByOperation,
		Weaknesses: utils.Map(statistics.Weaknesses, func(finding models.WeaknessFinding) dtos.WeaknessFindingDTO {
			return dtos.WeaknessFindingDTO{
				ComponentName: finding.ComponentName,
				Description:   finding.Description,
				Location:      finding.Location,
			}
		}),
	}
}

func GraphModelToDTO(graph *normalize.Graph[models.ClassifiedComponent]) dtos.GraphDTO {
	return dtos.GraphDTO{
		Nodes: utils.Map(graph.Nodes, func(node normalize.GraphNode[models.ClassifiedComponent]) dtos.GraphNodeDTO {
			return dtos.GraphNodeDTO{
				ID:   node.ID,
				Name: node.Element.Component.Name,
				Kind: string(node.Element.Kind),
				Tier: string(node.Element.Tier),
			}
		}),
		Edges: utils.Map(graph.Edges, func(edge normalize.GraphEdge) dtos.GraphEdgeDTO {
			return dtos.GraphEdgeDTO{
				Source: edge.Source,
				Target: edge.Target,
				Value:  edge.Value,
			}
		}),
		DroppedEdgeCount: graph.DroppedEdges,
	}
}
