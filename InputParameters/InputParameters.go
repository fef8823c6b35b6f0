package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/spf13/cast"
	"gopkg.in/ini.v1"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
)

var ErrMissingKey = errors.New("missing parameter")

// StreamingParameters obtained from a YAML file, an INI file or a flat string map
type StreamingParameters struct {
	Title            string  `json:"Title"`
	Womersley        float64 `json:"Womersley"`
	Cauchy           float64 `json:"Cauchy"`
	PinnedZoneRadius float64 `json:"PinnedZoneRadius"`
	Epsilon          float64 `json:"Epsilon"` // Defaults to ElasticStreaming.DefaultEpsilon when absent
}

func (sp *StreamingParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, sp); err != nil {
		return
	}
	sp.setDefaults()
	return
}

func (sp *StreamingParameters) setDefaults() {
	if sp.Epsilon == 0 {
		sp.Epsilon = ElasticStreaming.DefaultEpsilon
	}
}

// ParseINI reads the [streaming] section, key names follow the flat map convention
func (sp *StreamingParameters) ParseINI(data []byte) (err error) {
	var (
		cfg *ini.File
	)
	if cfg, err = ini.Load(data); err != nil {
		return
	}
	sec := cfg.Section("streaming")
	m := make(map[string]interface{})
	for _, key := range sec.Keys() {
		m[key.Name()] = key.String()
	}
	if err = sp.ParseMap(m); err != nil {
		return
	}
	sp.Title = sec.Key("title").String()
	return
}

func lookup(m map[string]interface{}, keys ...string) (v float64, found bool, err error) {
	for _, key := range keys {
		if raw, ok := m[key]; ok {
			if v, err = cast.ToFloat64E(raw); err != nil {
				err = fmt.Errorf("parameter %q: %w", key, err)
			}
			return v, true, err
		}
	}
	return
}

// ParseMap reads womersley (also spelled womerseley), cauchy, pinned_zone_radius and an optional epsilon
func (sp *StreamingParameters) ParseMap(m map[string]interface{}) (err error) {
	var (
		found bool
		dest  = []struct {
			v    *float64
			keys []string
		}{
			{&sp.Womersley, []string{"womersley", "womerseley"}},
			{&sp.Cauchy, []string{"cauchy"}},
			{&sp.PinnedZoneRadius, []string{"pinned_zone_radius"}},
		}
	)
	for _, d := range dest {
		if *d.v, found, err = lookup(m, d.keys...); err != nil {
			return
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrMissingKey, d.keys[0])
		}
	}
	if sp.Epsilon, _, err = lookup(m, "epsilon"); err != nil {
		return
	}
	sp.setDefaults()
	return
}

func (sp *StreamingParameters) ToParameters() ElasticStreaming.Parameters {
	return ElasticStreaming.NewParameters(sp.Womersley, sp.Cauchy, sp.PinnedZoneRadius, sp.Epsilon)
}

func (sp *StreamingParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= Womersley\n", sp.Womersley)
	fmt.Printf("%8.5f\t\t= Cauchy\n", sp.Cauchy)
	fmt.Printf("%8.5f\t\t= Pinned Zone Radius\n", sp.PinnedZoneRadius)
	fmt.Printf("%8.5f\t\t= Epsilon\n", sp.Epsilon)
	fmt.Printf("%8.5f\t\t= Kappa\n", sp.ToParameters().Kappa())
}
