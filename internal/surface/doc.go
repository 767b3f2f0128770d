// Package surface provides in-memory implementations of the pixel
// package's rendering-surface capability, plus a cache for loading
// image files that feed it.
//
// The package exists so that surface selection is an explicit caller
// decision: whoever constructs grids from images injects a provider
// instead of the core probing its host environment.
package surface
