// Package metrics computes descriptive statistics over a proximity graph:
// average local clustering coefficient, mean degree, mean eccentricity,
// radius, and diameter.
//
// The distance-based metrics (eccentricity mean, radius, diameter) are only
// meaningful on a single connected component — cross-component hop distance
// is infinite. Compute therefore runs a connectivity guard first: on a
// disconnected graph it reports those three metrics as explicitly undefined
// Values, fires the WithOnDisconnected hook once, and still computes the
// always-defined metrics. Disconnection is a recognized condition, not an
// error.
//
// Conventions for the degenerate sizes the definitions leave open:
//
//   - Empty graph: Compute returns ErrEmptyGraph (means over zero nodes are
//     not a number we want to invent).
//   - Single node: connected by definition; clustering 0, mean degree 0, and
//     eccentricity/radius/diameter all defined as 0.
//
// Errors:
//
//	ErrGraphNil   - nil graph pointer.
//	ErrEmptyGraph - graph with no nodes.
package metrics
