package k6summary

import (
	"bytes"
	"encoding/json"
)

// Metrics holds the metrics of a summary this step reads, the rest are ignored.
type Metrics struct {
	IterationDuration Trend `json:"iteration_duration"`
}

// Trend is a k6 trend metric. handleSummary() nests the statistics under "values",
// --summary-export writes them directly on the metric object; both are accepted.
type Trend struct {
	Min OptionalFloat
	Max OptionalFloat
}

type trendValues struct {
	Min OptionalFloat `json:"min"`
	Max OptionalFloat `json:"max"`
}

// UnmarshalJSON ...
func (t *Trend) UnmarshalJSON(data []byte) error {
	var raw struct {
		trendValues
		Values *trendValues `json:"values"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	values := raw.trendValues
	if raw.Values != nil {
		values = *raw.Values
	}

	*t = Trend(values)
	return nil
}

// OptionalFloat is a numeric summary field which may be missing.
// A missing or null value reads as 0, Set tells the two cases apart.
type OptionalFloat struct {
	Value float64
	Set   bool
}

// UnmarshalJSON ...
func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = OptionalFloat{}
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*f = OptionalFloat{Value: value, Set: true}
	return nil
}

// Float64 ...
func (f OptionalFloat) Float64() float64 {
	if !f.Set {
		return 0
	}
	return f.Value
}
