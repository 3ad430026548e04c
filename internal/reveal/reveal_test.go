package reveal

import "testing"

func TestLatchRevealsOnce(t *testing.T) {
	var l Latch
	if l.Revealed() || l.State() != Pending {
		t.Fatal("expected pending latch")
	}
	if !l.Reveal() {
		t.Fatal("expected first Reveal() to flip")
	}
	if l.Reveal() {
		t.Fatal("expected second Reveal() to be a no-op")
	}
	if l.State().String() != "revealed" {
		t.Fatalf("unexpected state %q", l.State())
	}
}

func TestTrackerRevealsAtThreshold(t *testing.T) {
	tr := NewTracker(0.125)
	sections := []Bounds{
		{Key: "home", Span: Span{Start: 0, Height: 22}},
		{Key: "about", Span: Span{Start: 22, Height: 50}},
		{Key: "projects", Span: Span{Start: 72, Height: 40}},
	}
	got := tr.Observe(Span{Start: 0, Height: 24}, sections)
	if len(got) != 1 || got[0] != "home" {
		t.Fatalf("expected only home revealed, got %#v", got)
	}
	// 3 visible rows of a 24-row viewport is exactly 0.125.
	got = tr.Observe(Span{Start: 1, Height: 24}, sections)
	if len(got) != 1 || got[0] != "about" {
		t.Fatalf("expected about revealed at threshold, got %#v", got)
	}
	if tr.Revealed("projects") {
		t.Fatal("expected projects still pending")
	}
}

func TestTrackerRevealsSectionTallerThanViewport(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	sections := []Bounds{
		{Key: "home", Span: Span{Start: 0, Height: 10}},
		{Key: "projects", Span: Span{Start: 10, Height: 51}},
	}
	// The whole viewport sits inside projects: 5 of 51 rows would stay under 0.1.
	got := tr.Observe(Span{Start: 20, Height: 5}, sections)
	if len(got) != 1 || got[0] != "projects" {
		t.Fatalf("expected tall projects section revealed, got %#v", got)
	}
	if !Visible(Span{Start: 0, Height: 5}, Span{Start: 4, Height: 100}, 0.2) {
		t.Fatal("expected one of five viewport rows to meet 0.2")
	}
	if Visible(Span{Start: 0, Height: 10}, Span{Start: 10, Height: 100}, 0.1) {
		t.Fatal("expected a section below the viewport to stay hidden")
	}
}

func TestTrackerNeverReverts(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	sections := []Bounds{
		{Key: "home", Span: Span{Start: 0, Height: 10}},
		{Key: "skills", Span: Span{Start: 100, Height: 10}},
	}
	tr.Observe(Span{Start: 0, Height: 10}, sections)
	tr.Observe(Span{Start: 100, Height: 10}, sections)
	got := tr.Observe(Span{Start: 0, Height: 10}, sections)
	if len(got) != 0 {
		t.Fatalf("expected nothing newly revealed, got %#v", got)
	}
	if !tr.Revealed("home") || !tr.Revealed("skills") {
		t.Fatal("expected both sections to stay revealed")
	}
}

func TestZeroHeightSection(t *testing.T) {
	tr := NewTracker(0.5)
	sections := []Bounds{{Key: "empty", Span: Span{Start: 5, Height: 0}}}
	if got := tr.Observe(Span{Start: 6, Height: 10}, sections); len(got) != 0 {
		t.Fatalf("expected start outside viewport to stay pending, got %#v", got)
	}
	if got := tr.Observe(Span{Start: 0, Height: 10}, sections); len(got) != 1 {
		t.Fatalf("expected zero-height section revealed, got %#v", got)
	}
}

func TestInvalidThresholdFallsBack(t *testing.T) {
	if NewTracker(0).Threshold() != DefaultThreshold {
		t.Fatal("expected fallback for zero threshold")
	}
	if NewTracker(1.5).Threshold() != DefaultThreshold {
		t.Fatal("expected fallback for threshold above one")
	}
	if ValidateThreshold(1) != nil {
		t.Fatal("expected 1 to be valid")
	}
}

func TestVisibleEmptyViewport(t *testing.T) {
	if Visible(Span{Start: 0, Height: 0}, Span{Start: 0, Height: 5}, 0.1) {
		t.Fatal("expected empty viewport to reveal nothing")
	}
}
