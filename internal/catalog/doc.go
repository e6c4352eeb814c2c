// Package catalog is the registry of every transform the workbench offers.
//
// Each transform has a stable id, a category, a list of numeric parameters
// with ranges and defaults, and flags describing whether it supports
// interactive preview and whether it needs a second operand image. Callers
// describe a request as a Spec; the catalog validates it, fills defaults and
// dispatches to the implementing package.
//
// # Parameter Resolution
//
// Missing parameters take their default. Some defaults depend on the source
// image (crop corners default to the full frame, region growing seeds
// default to the center); these are resolved against the source at apply
// time. Integer parameters are rounded after the range check. Any value
// outside its range, any unknown parameter name and any unknown id is an
// error wrapping raster.ErrRange.
//
// # Determinism
//
// Every transform is a pure function of (source, parameters). Noise
// transforms draw from a source seeded with Spec.Seed, falling back to the
// catalog's configured seed when Spec.Seed is zero.
package catalog
