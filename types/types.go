// Package types defines core type constraints shared across the voronoi module's
// subpackages.
//
// It holds the generic numeric constraint used by numeric's Abs helper; numeric is
// currently its only importer.
package types
