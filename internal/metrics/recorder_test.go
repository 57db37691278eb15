package metrics

import (
	"testing"
	"time"
)

type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	outcomes       map[OutcomeLabel]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		outcomes:       map[OutcomeLabel]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) { t.stageDurations[stage]++ }
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) ObserveRunDuration(time.Duration)     {}
func (t *testRecorder) IncRunOutcome(outcome OutcomeLabel) { t.outcomes[outcome]++ }
func (t *testRecorder) SetIndexedFiles(int)                {}
func (t *testRecorder) SetIndexBytes(int)                  {}

func TestRecorderInterfaceSatisfied(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)
	var _ Recorder = newTestRecorder()

	r := newTestRecorder()
	r.IncStageResult("publish", ResultFailed)
	r.IncRunOutcome(OutcomeFailed)
	if r.stageResults["publish"][ResultFailed] != 1 || r.outcomes[OutcomeFailed] != 1 {
		t.Fatalf("unexpected counts: %+v", r)
	}
}
