// SPDX-License-Identifier: MIT
//
// File: constants.go
// Role: Method tags, parameter minima and fixed IDs shared by the constructors.

package builder

// Method tags, used in error messages and as Spec.Kind values.
const (
	MethodPath         = "path"
	MethodCycle        = "cycle"
	MethodStar         = "star"
	MethodComplete     = "complete"
	MethodGrid         = "grid"
	MethodLadder       = "ladder"
	MethodRandomSparse = "random"
)

// Parameter minima.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinLadderRungs   = 2
	MinRandomNodes   = 1
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"
