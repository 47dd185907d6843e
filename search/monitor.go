package search

// Monitor provides hooks to observe the search process. Implement this
// interface to track intermediate stages, or to report fetch failures to
// an external error sink; the engine recovers from those locally and only
// surfaces them here.
type Monitor interface {
	Start(query string)
	FallbackUsed(query string, count int)
	AfterFetch(query string, count int)
	FetchFailed(query string, err error)
	AfterMatch(query string, count int)
	Finish(query string, results []Result)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) FallbackUsed(_ string, _ int)    {}
func (n *noopMonitor) AfterFetch(_ string, _ int)      {}
func (n *noopMonitor) FetchFailed(_ string, _ error)   {}
func (n *noopMonitor) AfterMatch(_ string, _ int)      {}
func (n *noopMonitor) Finish(_ string, _ []Result)     {}
