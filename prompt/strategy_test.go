package prompt

import "testing"

func TestFormatStrategy(t *testing.T) {
	got := FormatStrategy(0.0, 83.8, 2.8, 0.0, 13.3, 0.0, 0.1, 0.0)
	want := "- fold:  0.0%\n- check/call:  83.8%\n- raise third pot:  2.8%\n- raise half pot:  0.0%\n- raise two thirds pot:  13.3%\n- raise pot:  0.0%\n- raise 130 pot:  0.1%\n- raise all:  0.0%"
	if got != want {
		t.Errorf("FormatStrategy() =\n%s\nwant\n%s", got, want)
	}

	if got := FormatStrategy(100); got != "- fold:  100.0%" {
		t.Errorf("FormatStrategy(100) = %q", got)
	}
}

func TestTopAction(t *testing.T) {
	tests := []struct {
		name       string
		strategy   string
		wantAction string
		wantPct    float64
		wantOK     bool
	}{
		{
			name:       "check call",
			strategy:   FormatStrategy(0.0, 83.8, 2.8, 0.0, 13.3, 0.0, 0.1, 0.0),
			wantAction: "check/call",
			wantPct:    83.8,
			wantOK:     true,
		},
		{
			name:       "tie keeps first",
			strategy:   FormatStrategy(50, 50),
			wantAction: "fold",
			wantPct:    50,
			wantOK:     true,
		},
		{
			name:       "trailing period",
			strategy:   "- fold:  10.0%\n- raise all:  90.0%.",
			wantAction: "raise all",
			wantPct:    90,
			wantOK:     true,
		},
		{
			name:     "garbage",
			strategy: "no strategy here",
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, pct, ok := TopAction(tt.strategy)
			if ok != tt.wantOK || action != tt.wantAction || pct != tt.wantPct {
				t.Errorf("TopAction() = (%q, %v, %v), want (%q, %v, %v)", action, pct, ok, tt.wantAction, tt.wantPct, tt.wantOK)
			}
		})
	}
}

func TestCheckStrategy(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		wantErr  bool
	}{
		{name: "solver output", strategy: FormatStrategy(0.0, 83.8, 2.8, 0.0, 13.3, 0.0, 0.1, 0.0)},
		{name: "rounding drift", strategy: FormatStrategy(33.3, 33.3, 33.3)},
		{name: "pure action", strategy: FormatStrategy(0, 100)},
		{name: "short total", strategy: FormatStrategy(10, 40), wantErr: true},
		{name: "over total", strategy: FormatStrategy(60, 60), wantErr: true},
		{name: "negative share", strategy: "- fold:  -5.0%\n- check/call:  105.0%", wantErr: true},
		{name: "unreadable", strategy: "solver says hi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStrategy(tt.strategy)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckStrategy() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
