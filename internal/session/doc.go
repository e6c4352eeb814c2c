// Package session holds the single interactive editing session of the
// workbench.
//
// A session keeps three rasters: the original as loaded, the processed
// result that Save writes, and an optional preview computed from the
// original while a parameter is being adjusted.
//
// # States
//
//	Empty ──Load──▶ Loaded ──ParameterChange──▶ Previewing
//	                  ▲                              │
//	                  └──Confirm / Cancel / Apply────┘
//
// Every operation other than Load fails with an error wrapping
// raster.ErrState while the session is Empty. Confirm from Loaded is also
// a state error; Cancel from Loaded does nothing.
//
// # Concurrency
//
// Session state is guarded by a mutex and released while a transform runs.
// A second compute lock allows one computation at a time. Each preview
// takes a generation number; when any later state change bumps the
// generation first, the stale result is dropped and ErrSuperseded is
// returned.
package session
