// Package domain defines the core entities for Cosmo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external query logic and defines the fundamental types:
//
//   - Table: An opaque tabular result produced by an archive client
//   - SkyCoord: A celestial position in ICRS degrees
//   - Angle: An angular quantity with an explicit unit
//   - Report: A structured error record routed to a reporting sink
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse. Archive results pass through this layer
// untouched; the domain neither mutates nor interprets their contents.
package domain
