package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
)

type fakeService struct {
	name    string
	deps    []string
	initErr error
	trace   *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init() error {
	*f.trace = append(*f.trace, "init:"+f.name)
	return f.initErr
}
func (f *fakeService) Start(context.Context) error {
	*f.trace = append(*f.trace, "start:"+f.name)
	return nil
}
func (f *fakeService) Stop() error {
	*f.trace = append(*f.trace, "stop:"+f.name)
	return nil
}

func quietHub() *Hub {
	return NewHub(log.New(io.Discard, "", 0))
}

func TestHubLifecycleOrder(t *testing.T) {
	var trace []string
	h := quietHub()
	_ = h.Register(&fakeService{name: "leaderboard", deps: []string{"audio"}, trace: &trace})
	_ = h.Register(&fakeService{name: "audio", trace: &trace})

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if err := h.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	h.StopAll()

	want := "init:audio,init:leaderboard,start:audio,start:leaderboard,stop:leaderboard,stop:audio"
	if got := strings.Join(trace, ","); got != want {
		t.Errorf("lifecycle = %s, want %s", got, want)
	}
}

func TestHubInitRollback(t *testing.T) {
	var trace []string
	h := quietHub()
	_ = h.Register(&fakeService{name: "a", trace: &trace})
	_ = h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: errors.New("no device"), trace: &trace})

	err := h.InitAll()
	if err == nil || !strings.Contains(err.Error(), "no device") {
		t.Fatalf("InitAll error = %v, want wrapped init failure", err)
	}
	if trace[len(trace)-1] != "stop:a" {
		t.Errorf("expected rollback stop of a, trace = %v", trace)
	}
}

func TestHubRejectsDuplicatesAndCycles(t *testing.T) {
	var trace []string
	h := quietHub()
	if err := h.Register(&fakeService{name: "a", deps: []string{"b"}, trace: &trace}); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(&fakeService{name: "a", trace: &trace}); err == nil {
		t.Error("duplicate registration should fail")
	}
	_ = h.Register(&fakeService{name: "b", deps: []string{"a"}, trace: &trace})
	if err := h.InitAll(); err == nil || !strings.Contains(err.Error(), "circular") {
		t.Errorf("InitAll error = %v, want circular dependency", err)
	}
}

func TestMustGet(t *testing.T) {
	var trace []string
	h := quietHub()
	_ = h.Register(&fakeService{name: "audio", trace: &trace})

	if got := MustGet[*fakeService](h, "audio"); got.name != "audio" {
		t.Errorf("MustGet returned %s", got.name)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet of missing service should panic")
		}
	}()
	MustGet[*fakeService](h, "missing")
}
