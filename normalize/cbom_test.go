package normalize_test

import (
	"errors"
	"strings"
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/stretchr/testify/assert"

	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/shared"
)

func TestDecodeCBOM(t *testing.T) {
	t.Run("decodes a minimal document", func(t *testing.T) {
		doc := `{
			"bomFormat": "CycloneDX",
			"specVersion": "1.6",
			"metadata": {"timestamp": "2025-06-01T12:00:00Z"},
			"components": [
				{"bom-ref": "asset-1", "type": "data", "name": "AES-128-GCM"}
			]
		}`

		bom, err := normalize.DecodeCBOM(strings.NewReader(doc))

		assert.NoError(t, err)
		assert.Len(t, normalize.Components(bom), 1)
		assert.Equal(t, "2025-06-01T12:00:00Z", normalize.Timestamp(bom))
	})

	t.Run("malformed json yields a ParseError", func(t *testing.T) {
		_, err := normalize.DecodeCBOM(strings.NewReader(`{"components": [`))

		assert.Error(t, err)
		var parseError *normalize.ParseError
		assert.True(t, errors.As(err, &parseError))
	})

	t.Run("accessors tolerate absent sections", func(t *testing.T) {
		bom, err := normalize.DecodeCBOM(strings.NewReader(`{"bomFormat": "CycloneDX", "specVersion": "1.6"}`))

		assert.NoError(t, err)
		assert.Empty(t, normalize.Components(bom))
		assert.Empty(t, normalize.Dependencies(bom))
		assert.Equal(t, "", normalize.Timestamp(bom))
	})
}

func TestFlattenProperties(t *testing.T) {
	t.Run("no property bag flattens to an empty map", func(t *testing.T) {
		props := normalize.FlattenProperties(cdx.Component{Name: "bare"})

		assert.Empty(t, props)
	})

	t.Run("the later duplicate wins", func(t *testing.T) {
		component := cdx.Component{
			Properties: &[]cdx.Property{
				{Name: "primitive", Value: "hash"},
				{Name: "provider", Value: "openssl"},
				{Name: "primitive", Value: "blockcipher"},
			},
		}

		props := normalize.FlattenProperties(component)

		assert.Equal(t, "blockcipher", props["primitive"])
		assert.Equal(t, "openssl", props["provider"])
	})
}

func TestPropertyOrUnknown(t *testing.T) {
	props := map[string]string{
		"primitive": "signature",
		"operation": "",
	}

	assert.Equal(t, "signature", normalize.PropertyOrUnknown(props, "primitive"))
	assert.Equal(t, normalize.ValueUnknown, normalize.PropertyOrUnknown(props, "operation"))
	assert.Equal(t, normalize.ValueUnknown, normalize.PropertyOrUnknown(props, "provider"))
}

func TestWeakness(t *testing.T) {
	t.Run("absent or blank values are no finding", func(t *testing.T) {
		_, ok := normalize.Weakness(map[string]string{})
		assert.False(t, ok)

		_, ok = normalize.Weakness(map[string]string{"weaknesses": "   "})
		assert.False(t, ok)
	})

	t.Run("values are trimmed", func(t *testing.T) {
		weakness, ok := normalize.Weakness(map[string]string{"weaknesses": "  short key size \n"})

		assert.True(t, ok)
		assert.Equal(t, "short key size", weakness)
	})
}

func TestFirstOccurrenceLocation(t *testing.T) {
	t.Run("no evidence maps to unknown", func(t *testing.T) {
		assert.Equal(t, normalize.ValueUnknown, normalize.FirstOccurrenceLocation(cdx.Component{}))
	})

	t.Run("first non-empty location wins", func(t *testing.T) {
		component := cdx.Component{
			Evidence: &cdx.Evidence{
				Occurrences: &[]cdx.EvidenceOccurrence{
					{Location: "", Line: shared.Ptr(3)},
					{Location: "src/crypto/aes.c", Line: shared.Ptr(42)},
					{Location: "src/crypto/aes.h"},
				},
			},
		}

		assert.Equal(t, "src/crypto/aes.c", normalize.FirstOccurrenceLocation(component))
	})
}
