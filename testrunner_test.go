package folio

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "resize", "width": 640, "height": 480},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Width != 640 || runner.steps[3].Height != 480 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	for _, in := range []string{
		`not json`,
		`{"steps": []}`,
		`{"steps": [{"action": "teleport"}]}`,
	} {
		if _, err := LoadTestScript([]byte(in)); err == nil {
			t.Errorf("LoadTestScript(%s) succeeded, want error", in)
		}
	}
}

func TestRunnerStepClick(t *testing.T) {
	a := NewApp("gallery", 800, 600)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	a.SetTestRunner(runner)

	// click queues press and release.
	runner.step(a)
	if len(a.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(a.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	a.processInjectedInput(t0)
	a.processInjectedInput(t0)

	runner.step(a)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStepWait(t *testing.T) {
	a := NewApp("gallery", 10, 10)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Three frames of waiting, then the screenshot.
	for i := 0; i < 3; i++ {
		runner.step(a)
		if runner.Done() {
			t.Fatalf("done during wait at frame %d", i)
		}
	}
	runner.step(a)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(a.screenshotQueue) != 1 || a.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", a.screenshotQueue)
	}
}

func TestRunnerStepDrag(t *testing.T) {
	a := NewApp("gallery", 800, 600)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(a)
	if len(a.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", len(a.injectQueue))
	}
}

func TestRunnerStepHoverLeaveResize(t *testing.T) {
	a := NewApp("gallery", 800, 600)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "hover", "x": 5, "y": 6},
		{"action": "leave"},
		{"action": "resize", "width": 320, "height": 200}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := recordKinds(a.Container())

	for i := 0; i < 6 && !runner.Done(); i++ {
		runner.step(a)
		a.processInjectedInput(t0)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	kinds := make([]EventKind, len(*got))
	for i, e := range *got {
		kinds[i] = e.Kind
	}
	want := []EventKind{EventPointerMove, EventPointerLeave, EventResize}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, kinds[i], want[i])
		}
	}
	if w, h := a.Container().Size(); w != 320 || h != 200 {
		t.Errorf("container size = %dx%d", w, h)
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	a := NewApp("gallery", 10, 10)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 5, "y": 5},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(a)
	if len(a.injectQueue) != 2 {
		t.Fatalf("expected 2 events, got %d", len(a.injectQueue))
	}

	// Does not advance while injections are pending.
	runner.step(a)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	a.injectQueue = a.injectQueue[:0]

	runner.step(a)
	if len(a.screenshotQueue) != 1 || a.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", a.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
