package match

import (
	"github.com/scholarch/expertmatch/core"
)

// AnalysisMonitor provides hooks to observe the analysis process.
// Implement this interface to track intermediate steps and results while
// a problem statement is analyzed.
type AnalysisMonitor interface {
	Start(problem string)
	AfterTagExtraction(tags []string, keyDomain map[string]float64)
	AfterMatching(results []*core.ExpertResult)
	AfterGrouping(groups []core.TagGroup)
	AfterTeamSelection(team *core.Team)
	Finish(report *core.Report)
}

// noopMonitor is a no-op implementation of AnalysisMonitor
type noopMonitor struct{}

var _ AnalysisMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                     {}
func (n *noopMonitor) AfterTagExtraction(_ []string, _ map[string]float64) {}
func (n *noopMonitor) AfterMatching(_ []*core.ExpertResult)               {}
func (n *noopMonitor) AfterGrouping(_ []core.TagGroup)                    {}
func (n *noopMonitor) AfterTeamSelection(_ *core.Team)                    {}
func (n *noopMonitor) Finish(_ *core.Report)                              {}
