package services_test

import (
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/stretchr/testify/assert"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/services"
)

func TestAggregate(t *testing.T) {
	classifier := services.NewClassifierService()
	statistics := services.NewStatisticsService()

	t.Run("empty input yields zeroed statistics", func(t *testing.T) {
		stats := statistics.Aggregate(nil)

		assert.Equal(t, 0, stats.Total)
		assert.Empty(t, stats.ByPrimitive)
		assert.Empty(t, stats.Weaknesses)
	})

	t.Run("only cryptographic assets count", func(t *testing.T) {
		classified := classifier.ClassifyAll([]cdx.Component{
			{BOMRef: "file-1", Name: "main.c", Type: cdx.ComponentTypeFile},
			{BOMRef: "lib-1", Name: "libcrypto", Type: cdx.ComponentTypeLibrary},
			dataComponent("asset-1", "SHA-256",
				cdx.Property{Name: "primitive", Value: "hash"},
				cdx.Property{Name: "provider", Value: "openssl"},
				cdx.Property{Name: "pqm.vulnerability", Value: "symmetric-safe"},
				cdx.Property{Name: "operation", Value: "digest"},
			),
			dataComponent("asset-2", "RSA-2048",
				cdx.Property{Name: "primitive", Value: "signature"},
				cdx.Property{Name: "provider", Value: "openssl"},
				cdx.Property{Name: "pqm.vulnerability", Value: "quantum-vulnerable"},
			),
		})

		stats := statistics.Aggregate(classified)

		assert.Equal(t, 2, stats.Total)
		assert.Equal(t, map[string]int{"hash": 1, "signature": 1}, stats.ByPrimitive)
		assert.Equal(t, map[string]int{"openssl": 2}, stats.ByProvider)
		assert.Equal(t, map[string]int{"symmetric-safe": 1, "quantum-vulnerable": 1}, stats.ByClassification)
		assert.Equal(t, map[string]int{"digest": 1, "unknown": 1}, stats.ByOperation)
	})

	t.Run("untagged assets count under unknown", func(t *testing.T) {
		classified := classifier.ClassifyAll([]cdx.Component{
			dataComponent("asset-1", "mystery-a"),
			dataComponent("asset-2", "mystery-b"),
		})

		stats := statistics.Aggregate(classified)

		assert.Equal(t, 2, stats.Total)
		assert.Equal(t, map[string]int{"unknown": 2}, stats.ByPrimitive)
		assert.Equal(t, map[string]int{"unknown": 2}, stats.ByClassification)
	})

	t.Run("weakness findings keep input order and evidence location", func(t *testing.T) {
		flagged := dataComponent("asset-1", "DES",
			cdx.Property{Name: "weaknesses", Value: "  56-bit key  "},
		)
		flagged.Evidence = &cdx.Evidence{
			Occurrences: &[]cdx.EvidenceOccurrence{
				{Location: "src/legacy/des.c"},
			},
		}

		classified := classifier.ClassifyAll([]cdx.Component{
			flagged,
			dataComponent("asset-2", "AES-256",
				cdx.Property{Name: "weaknesses", Value: "   "},
			),
			dataComponent("asset-3", "MD5",
				cdx.Property{Name: "weaknesses", Value: "collision attacks"},
			),
		})

		stats := statistics.Aggregate(classified)

		assert.Len(t, stats.Weaknesses, 2)
		assert.Equal(t, models.WeaknessFinding{
			ComponentName: "DES",
			Description:   "56-bit key",
			Location:      "src/legacy/des.c",
		}, stats.Weaknesses[0])
		assert.Equal(t, "MD5", stats.Weaknesses[1].ComponentName)
		assert.Equal(t, "unknown", stats.Weaknesses[1].Location)
	})

	t.Run("aggregation is deterministic", func(t *testing.T) {
		classified := classifier.ClassifyAll([]cdx.Component{
			dataComponent("asset-1", "SHA-256", cdx.Property{Name: "primitive", Value: "hash"}),
		})

		first := statistics.Aggregate(classified)
		second := statistics.Aggregate(classified)

		assert.Equal(t, first, second)
	})
}
