package metrics

import "time"

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID       int
	Kind     string        // search, clockwise or random
	TurnTime time.Duration // Search budget, unused by reactive agents
	Seed     uint64        // Random agent seed
}

type SearchMetric struct {
	TurnTime    time.Duration
	Duration    time.Duration
	Expansions  int // Frontier nodes expanded
	Evaluations int // Heuristic lookups, cached or not
	CacheHits   int
	CacheSize   int
	Depth       int // Longest action path pushed to the frontier
	BestScore   int
	Decisive    bool // Search stopped early on a forced win
}

type MoveMetric struct {
	Turn   int
	Player int // Player ID
	Action string
	SearchMetric
}

type GameMetric struct {
	Winner     int // Player ID, -1 on a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
	TotalMoves int
}

// Collector accumulates statistics over a single search.
type Collector interface {
	Start(turnTime time.Duration)
	AddExpansion()
	AddEvaluation(cached bool)
	ReachDepth(depth int)
	Complete(bestScore int, decisive bool, cacheSize int) SearchMetric
}

type collector struct {
	turnTime    time.Duration
	startTime   time.Time
	expansions  int
	evaluations int
	cacheHits   int
	depth       int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(turnTime time.Duration) {
	*m = collector{turnTime: turnTime, startTime: time.Now()}
}

func (m *collector) AddExpansion() {
	m.expansions++
}

func (m *collector) AddEvaluation(cached bool) {
	m.evaluations++
	if cached {
		m.cacheHits++
	}
}

func (m *collector) ReachDepth(depth int) {
	m.depth = max(m.depth, depth)
}

func (m *collector) Complete(bestScore int, decisive bool, cacheSize int) SearchMetric {
	return SearchMetric{
		TurnTime:    m.turnTime,
		Duration:    time.Since(m.startTime),
		Expansions:  m.expansions,
		Evaluations: m.evaluations,
		CacheHits:   m.cacheHits,
		CacheSize:   cacheSize,
		Depth:       m.depth,
		BestScore:   bestScore,
		Decisive:    decisive,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(turnTime time.Duration) {}
func (m *dummyCollector) AddExpansion()                {}
func (m *dummyCollector) AddEvaluation(cached bool)    {}
func (m *dummyCollector) ReachDepth(depth int)         {}
func (m *dummyCollector) Complete(bestScore int, decisive bool, cacheSize int) SearchMetric {
	return SearchMetric{}
}
