package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHeader_Render(t *testing.T) {
	h := NewHeader("Now Playing", "musiccast now-playing",
		Param{Key: "Receiver", Value: "192.168.1.50"},
		Param{Key: "Model", Value: "RX-S602"},
	).SetWidth(70)

	out := h.Render()

	for _, want := range []string{"NOW PLAYING", "musiccast now-playing", "Receiver:", "192.168.1.50", "RX-S602"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Receiver") > strings.Index(out, "Model") {
		t.Error("params should render in the order given")
	}
}

func TestHeader_NoParams(t *testing.T) {
	out := NewHeader("Version", "musiccast version").SetWidth(10).Render()
	if !strings.Contains(out, "VERSION") {
		t.Errorf("Render() = %q", out)
	}
	if hasDividerRow(out) {
		t.Errorf("divider should only render with params:\n%s", out)
	}

	withParams := NewHeader("Version", "musiccast version", Param{Key: "Receiver", Value: "192.168.1.50"}).SetWidth(10).Render()
	if !hasDividerRow(withParams) {
		t.Errorf("divider missing with params:\n%s", withParams)
	}
}

// hasDividerRow reports whether a line inside the box border contains a
// horizontal rule. The first and last lines are the border itself.
func hasDividerRow(box string) bool {
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	if len(lines) < 3 {
		return false
	}
	for _, line := range lines[1 : len(lines)-1] {
		if strings.Contains(line, "───") {
			return true
		}
	}
	return false
}

func TestResult_Render(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Volume raised", Param{Key: "Response", Value: "Successful request"}),
			want:   []string{SuccessMarker, "SUCCESS", "Volume raised", "Response:", "Successful request"},
		},
		{
			name:   "warning",
			result: NewWarningResult("No data").AddDetail("Endpoint", "netusb/getPlayInfo"),
			want:   []string{"WARNING", "No data", "netusb/getPlayInfo"},
		},
		{
			name: "failure",
			result: NewFailureResult("Play failed", errors.New("connection refused"),
				[]string{"Check the receiver is on", "Check the address"}),
			want: []string{FailureMarker, "FAILED", "Play failed", "Error: connection refused", "Troubleshooting:", "Check the address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Render() missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintBody("Power: on\nInput: net_radio\n")
	p.PrintError("Connection failed", errors.New("timeout"), "First hint\nSecond hint\n")

	out := buf.String()
	for _, want := range []string{"Power: on", "Input: net_radio", "Error: timeout", "First hint", "Second hint"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if err := p.PrintJSON(map[string]any{"model_name": "RX-S602"}); err != nil {
		t.Fatalf("PrintJSON() error = %v", err)
	}
	if buf.String() != "{\n  \"model_name\": \"RX-S602\"\n}\n" {
		t.Errorf("PrintJSON() = %q", buf.String())
	}
}
