package controller

// AppState is the controller-owned application state.
type AppState struct {
	// UserID scopes every API call. It is empty until Identify succeeds.
	UserID string
	// SelectedDate is the single active ISO date.
	SelectedDate string
}

// generations orders concurrently issued requests of one kind so that a
// result older than the newest applied one can be dropped.
type generations struct {
	issued  uint64
	applied uint64
}

func (g *generations) next() uint64 {
	g.issued++
	return g.issued
}

// accept records gen as applied unless a newer one already was.
func (g *generations) accept(gen uint64) bool {
	if gen < g.applied {
		return false
	}
	g.applied = gen
	return true
}
