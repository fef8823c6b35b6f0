package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
)

func TestStreamingParameters(t *testing.T) {
	{ // YAML
		sp := &StreamingParameters{}
		require.NoError(t, sp.Parse([]byte(`
Title: "Reference Case"
Womersley: 8
Cauchy: 0.05
PinnedZoneRadius: 0.2
`)))
		assert.Equal(t, "Reference Case", sp.Title)
		assert.Equal(t, ElasticStreaming.NewParameters(8, 0.05, 0.2), sp.ToParameters())
		assert.Error(t, sp.Parse([]byte("Womersley: [")))
	}
	{ // INI
		sp := &StreamingParameters{}
		require.NoError(t, sp.ParseINI([]byte(`
[streaming]
title = Slider Defaults
womerseley = 1.3
cauchy = 0.49
pinned_zone_radius = 0.2
epsilon = 0.1
`)))
		assert.Equal(t, "Slider Defaults", sp.Title)
		assert.Equal(t, 1.3, sp.Womersley)
		assert.Equal(t, 0.49, sp.Cauchy)
		assert.Equal(t, 0.1, sp.Epsilon)
		assert.InDelta(t, 4.9, sp.ToParameters().Kappa(), 1.e-14)
	}
	{ // Flat string map, either spelling
		for _, key := range []string{"womersley", "womerseley"} {
			sp := &StreamingParameters{}
			require.NoError(t, sp.ParseMap(map[string]interface{}{
				key:                  "8",
				"cauchy":             "0.05",
				"pinned_zone_radius": 0.2,
			}))
			assert.Equal(t, 8., sp.Womersley)
			assert.Equal(t, 0.2, sp.PinnedZoneRadius)
			assert.Equal(t, ElasticStreaming.DefaultEpsilon, sp.Epsilon)
		}
	}
	{
		sp := &StreamingParameters{}
		err := sp.ParseMap(map[string]interface{}{"womersley": "8", "cauchy": "0.05"})
		assert.ErrorIs(t, err, ErrMissingKey)
		err = sp.ParseMap(map[string]interface{}{"womersley": "eight", "cauchy": "0.05", "pinned_zone_radius": "0.2"})
		assert.Error(t, err)
	}
}
