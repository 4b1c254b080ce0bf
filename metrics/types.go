// This file declares the Record/Value result types, canonical metric names,
// sentinel errors, and the functional options for Compute.
package metrics

import "errors"

// Sentinel errors for metric computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrEmptyGraph is returned for a graph with no nodes; every metric is a
	// mean over nodes and has no convention worth inventing at n=0.
	ErrEmptyGraph = errors.New("metrics: empty graph")
)

// Canonical metric names, the keys of Record.AsMap. Tabulation and export
// layers should key on these rather than restating strings.
const (
	MetricAverageClustering = "average_clustering"
	MetricAvgDegree         = "avg_degree"
	MetricEccentricityMean  = "eccentricity_mean"
	MetricRadius            = "radius"
	MetricDiameter          = "diameter"
)

// Value is a numeric metric that may be explicitly undefined. Distance-based
// metrics on a disconnected graph are undefined rather than approximated.
type Value struct {
	// Float64 is the metric value; meaningless unless Defined.
	Float64 float64

	// Defined reports whether the metric exists for the analyzed graph.
	Defined bool
}

// defined wraps v as a defined Value.
func defined(v float64) Value { return Value{Float64: v, Defined: true} }

// undefined is the explicit "not computed" marker.
func undefined() Value { return Value{} }

// Record holds the five descriptive metrics of one graph.
//
// AverageClustering and MeanDegree are always defined for a non-empty graph.
// MeanEccentricity, Radius, and Diameter carry the undefined marker when the
// graph is not a single connected component.
type Record struct {
	AverageClustering float64
	MeanDegree        float64
	MeanEccentricity  Value
	Radius            Value
	Diameter          Value

	// Connected is the connectivity guard's verdict.
	Connected bool
}

// AsMap returns exactly the five canonical metrics keyed by name — the shape
// display and export collaborators consume. Always-defined metrics are
// wrapped as defined Values.
func (r Record) AsMap() map[string]Value {
	return map[string]Value{
		MetricAverageClustering: defined(r.AverageClustering),
		MetricAvgDegree:         defined(r.MeanDegree),
		MetricEccentricityMean:  r.MeanEccentricity,
		MetricRadius:            r.Radius,
		MetricDiameter:          r.Diameter,
	}
}

// Option configures Compute via functional arguments.
type Option func(*options)

// options holds the resolved Compute configuration.
type options struct {
	// onDisconnected fires once when the connectivity guard fails, with the
	// size of the component reached from the lowest node id and the total
	// node count.
	onDisconnected func(reached, total int)
}

// defaultOptions returns options with a no-op disconnection hook.
func defaultOptions() options {
	return options{onDisconnected: func(int, int) {}}
}

// WithOnDisconnected registers the non-fatal warning hook fired when the
// graph is not a single connected component. Computation of the remaining
// metrics proceeds normally after the hook returns.
func WithOnDisconnected(fn func(reached, total int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDisconnected = fn
		}
	}
}
