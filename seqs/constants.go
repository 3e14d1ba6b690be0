// Package seqs defines shared constants used by sequence generators,
// ensuring consistent defaults and validation across all constructors.
package seqs

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandom is the canonical name for the Random generator.
	MethodRandom = "Random"
	// MethodAscending is the canonical name for the Ascending generator.
	MethodAscending = "Ascending"
	// MethodDescending is the canonical name for the Descending generator.
	MethodDescending = "Descending"
	// MethodConstant is the canonical name for the Constant generator.
	MethodConstant = "Constant"
	// MethodShuffled is the canonical name for the Shuffled generator.
	MethodShuffled = "Shuffled"
	// MethodNearlySorted is the canonical name for the NearlySorted generator.
	MethodNearlySorted = "NearlySorted"
	// MethodFewDistinct is the canonical name for the FewDistinct generator.
	MethodFewDistinct = "FewDistinct"
	// MethodSawtooth is the canonical name for the Sawtooth generator.
	MethodSawtooth = "Sawtooth"
	// MethodOrganPipe is the canonical name for the OrganPipe generator.
	MethodOrganPipe = "OrganPipe"
)

//-----------------------------------------------------------------------------
// Default Value Bounds
//-----------------------------------------------------------------------------

// DefaultMinValue is the inclusive lower bound Random draws from when no
// WithValueBounds override is given. Together with DefaultMaxValue it keeps
// generated data well inside counting-sort budgets.
const DefaultMinValue = -10000

// DefaultMaxValue is the inclusive upper bound Random draws from when no
// WithValueBounds override is given.
const DefaultMaxValue = 10000

//-----------------------------------------------------------------------------
// Shape Defaults
//-----------------------------------------------------------------------------

// DefaultDistinct is the size of the value domain FewDistinct draws from
// when no WithDistinct override is given. Four values make duplicates
// dominate at every practical length.
const DefaultDistinct = 4

// DefaultPeriod is the ramp length Sawtooth repeats when no WithPeriod
// override is given.
const DefaultPeriod = 8

// DisorderDivisor scales the automatic NearlySorted swap count: by default
// one random swap per DisorderDivisor elements, never fewer than one.
const DisorderDivisor = 20
