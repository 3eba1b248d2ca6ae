// Package beam computes per-leaf beam counts for partial beaming.
//
// A run is a maximal stretch of consecutive beamable leaves: non-rest
// leaves whose written duration carries at least one flag (1/8 and
// shorter). Within a run each leaf gets a left and a right count —
// the number of beams joining it to its neighbor on that side, the
// minimum of the two flag counts. The first leaf of a run has left
// count 0 and the last has right count 0; a run of one draws nothing.
//
// Counts are symmetric by construction: for adjacent beamed leaves A
// and B, A's right count equals B's left count.
//
// With stemlets enabled, a rest adjacent to a run is marked so the
// renderer can draw a stemlet into it instead of ending the beam dead.
//
// Policy selects the whole behavior: Default as above, None to leave
// every count zero, Custom to delegate counting to a caller-supplied
// function.
package beam
