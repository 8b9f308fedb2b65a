package model

// QueryMode names the retrieval strategy that produced a query context.
type QueryMode string

const (
	QueryModeLocal  QueryMode = "local"
	QueryModeGlobal QueryMode = "global"
	QueryModeHybrid QueryMode = "hybrid"
	QueryModeNaive  QueryMode = "naive"
	QueryModeMix    QueryMode = "mix"
	QueryModeBypass QueryMode = "bypass"
)

// IsKnown reports whether the mode is one of the predefined modes.
// Unknown modes are still echoed unchanged.
func (m QueryMode) IsKnown() bool {
	switch m {
	case QueryModeLocal, QueryModeGlobal, QueryModeHybrid, QueryModeNaive, QueryModeMix, QueryModeBypass:
		return true
	}
	return false
}
