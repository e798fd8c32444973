// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MaterialAnalysis is the predicate function for materialanalysis builders.
type MaterialAnalysis func(*sql.Selector)

// MediaItem is the predicate function for mediaitem builders.
type MediaItem func(*sql.Selector)

// Persona is the predicate function for persona builders.
type Persona func(*sql.Selector)

// PromptTemplate is the predicate function for prompttemplate builders.
type PromptTemplate func(*sql.Selector)

// ScriptContent is the predicate function for scriptcontent builders.
type ScriptContent func(*sql.Selector)

// SubVideoTask is the predicate function for subvideotask builders.
type SubVideoTask func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
