package services

import (
	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/shared"
)

type statisticsService struct{}

func NewStatisticsService() shared.StatisticsService {
	return &statisticsService{}
}

// Aggregate computes the inventory statistics over the cryptographic
// assets of one classified set. File components never count - they hold
// no crypto themselves, they only reference it. A single pass increments
// the four grouping counters and collects weakness findings in input
// order, so re-running on the same set yields identical output.
func (s *statisticsService) Aggregate(components []models.ClassifiedComponent) models.InventoryStatistics {
	stats := models.NewInventoryStatistics()

	for _, component := range components {
		if component.Kind != models.KindData {
			continue
		}

		stats.Total++
		stats.ByPrimitive[component.Primitive]++
		stats.ByProvider[component.Provider]++
		stats.ByClassification[component.Classification]++
		stats.ByOperation[component.Operation]++

		if description, ok := normalize.Weakness(component.Properties); ok {
			stats.Weaknesses = append(stats.Weaknesses, models.WeaknessFinding{
				ComponentName: component.Component.Name,
				Description:   description,
				Location:      normalize.FirstOccurrenceLocation(*component.Component),
			})
		}
	}

	return stats
}
