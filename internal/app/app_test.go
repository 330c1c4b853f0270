package app

import (
	"testing"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
)

type fakeScheduler struct {
	started   bool
	triggered []string
}

func (f *fakeScheduler) Start() error {
	f.started = true
	return nil
}

func (f *fakeScheduler) Stop() error {
	f.started = false
	return nil
}

func (f *fakeScheduler) IsRunning() bool { return f.started }

func (f *fakeScheduler) RegisterJob(name string, schedule string, handler func() error) error {
	return nil
}

func (f *fakeScheduler) TriggerJob(name string) error {
	f.triggered = append(f.triggered, name)
	return nil
}

func (f *fakeScheduler) GetJobStatus(name string) (*interfaces.JobStatus, error) {
	return nil, nil
}

func (f *fakeScheduler) GetAllJobStatuses() map[string]*interfaces.JobStatus {
	return nil
}

func testApp(sched interfaces.SchedulerService) *App {
	return &App{
		Config:    common.NewDefaultConfig(),
		Logger:    arbor.NewLogger(),
		Scheduler: sched,
	}
}

func TestStartSchedulerRunsBothCyclesOnStartup(t *testing.T) {
	sched := &fakeScheduler{}
	a := testApp(sched)
	a.Config.Scheduler.RunOnStartup = true

	if err := a.StartScheduler(); err != nil {
		t.Fatalf("StartScheduler failed: %v", err)
	}
	if !sched.started {
		t.Error("scheduler should be started")
	}
	if len(sched.triggered) != 2 {
		t.Fatalf("expected 2 startup triggers, got %v", sched.triggered)
	}
	if sched.triggered[0] != JobAggregation || sched.triggered[1] != JobStateUpdate {
		t.Errorf("expected [%s %s], got %v", JobAggregation, JobStateUpdate, sched.triggered)
	}
}

func TestStartSchedulerWithoutRunOnStartup(t *testing.T) {
	sched := &fakeScheduler{}
	a := testApp(sched)

	if err := a.StartScheduler(); err != nil {
		t.Fatalf("StartScheduler failed: %v", err)
	}
	if len(sched.triggered) != 0 {
		t.Errorf("expected no startup triggers, got %v", sched.triggered)
	}
}

func TestStartSchedulerDisabled(t *testing.T) {
	sched := &fakeScheduler{}
	a := testApp(sched)
	a.Config.Scheduler.Enabled = false

	if err := a.StartScheduler(); err != nil {
		t.Fatalf("StartScheduler failed: %v", err)
	}
	if sched.started {
		t.Error("scheduler should not start when disabled")
	}
}
