package lcdgui

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
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
	if st := runner.steps[3]; st.FromX != 1 || st.FromY != 2 || st.ToX != 3 || st.ToY != 4 || st.Frames != 6 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "tap"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStepClick(t *testing.T) {
	g, _ := newTestGUI(t)
	led, _ := g.NewLED(1, 0, 0, 50, 50)
	btn, _ := g.NewButton(2, 60, 0, 30, 30, "T")
	ButtonOnClick(btn, func(*Widget) { LEDToggle(led) })

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 70, "y": 10}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	// Frame 1: runner queues the click and the press is consumed.
	g.Process()
	if runner.Done() {
		t.Error("runner should wait for the injected samples")
	}
	// Frame 2: release fires the click.
	g.Process()
	if !LEDIsOn(led) {
		t.Error("click should have toggled the LED")
	}
	// Frame 3: runner notices it is finished.
	g.Process()
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStepWait(t *testing.T) {
	g, _ := newTestGUI(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "x": 1, "y": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	for i := 0; i < 3; i++ {
		g.Process()
		if len(g.injectQueue) != 0 || g.touchLast.Pressed {
			t.Fatalf("frame %d: press should wait", i)
		}
	}
	g.Process()
	if !g.touchLast.Pressed {
		t.Error("press should run after the wait")
	}
	g.Process()
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerScreenshot(t *testing.T) {
	g, _ := newTestGUI(t)
	g.ScreenshotDir = t.TempDir()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "boot"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)
	g.Process()

	if !runner.Done() {
		t.Error("runner should be done")
	}
	if len(g.screenshotQueue) != 0 {
		t.Error("screenshot queue should be flushed")
	}
}
