package search

// Logger mirrors the teacher's engine.Logger: BeginSearch/EndSearch bracket
// a whole Tree.Search call; LogIteration reports progress after each MCTS
// iteration, the MCTS analogue of PrintPV after each iterative-deepening
// depth.
type Logger interface {
	BeginSearch()
	EndSearch()
	LogIteration(i int, stats Stats)
}

// NopLogger discards every event, exactly like the teacher's NulLogger.
type NopLogger struct{}

func (NopLogger) BeginSearch()                  {}
func (NopLogger) EndSearch()                    {}
func (NopLogger) LogIteration(i int, s Stats) {}
