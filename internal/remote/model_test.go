package remote

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/musiccast/internal/yxc"
)

type fakeController struct {
	calls  []string
	muted  bool
	failOn string
	status yxc.Response
}

func (f *fakeController) do(name string) (yxc.Response, error) {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return nil, &yxc.DeviceError{Type: yxc.ErrTypeTimeout, Message: "timed out", Retryable: true}
	}
	return yxc.Response{"response_code": float64(0)}, nil
}

func (f *fakeController) PowerToggle(ctx context.Context) (yxc.Response, error) { return f.do("power") }
func (f *fakeController) Play(ctx context.Context) (yxc.Response, error)        { return f.do("play") }
func (f *fakeController) Stop(ctx context.Context) (yxc.Response, error)        { return f.do("stop") }
func (f *fakeController) Next(ctx context.Context) (yxc.Response, error)        { return f.do("next") }
func (f *fakeController) Previous(ctx context.Context) (yxc.Response, error)    { return f.do("previous") }
func (f *fakeController) IncreaseVolume(ctx context.Context) (yxc.Response, error) {
	return f.do("volume_up")
}
func (f *fakeController) DecreaseVolume(ctx context.Context) (yxc.Response, error) {
	return f.do("volume_down")
}
func (f *fakeController) Mute(ctx context.Context) (yxc.Response, error)   { return f.do("mute") }
func (f *fakeController) Unmute(ctx context.Context) (yxc.Response, error) { return f.do("unmute") }

func (f *fakeController) GetStatus(ctx context.Context) (yxc.Response, error) {
	f.calls = append(f.calls, "status")
	if f.status != nil {
		return f.status, nil
	}
	return yxc.Response{
		"response_code": float64(0),
		"power":         "on",
		"input":         "net_radio",
		"volume":        float64(40),
		"max_volume":    float64(161),
		"mute":          f.muted,
	}, nil
}

func (f *fakeController) GetPlayInfo(ctx context.Context) (yxc.Response, error) {
	f.calls = append(f.calls, "play_info")
	return yxc.Response{
		"response_code": float64(0),
		"playback":      "play",
		"artist":        "Air",
		"track":         "Talisman",
		"album":         "Moon Safari",
		"play_time":     float64(61),
		"total_time":    float64(256),
	}, nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and any batched commands, returning the produced messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// settle feeds every message produced by cmd back into the model until no
// commands remain
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		var next []tea.Cmd
		for _, msg := range collect(cmd) {
			updated, c := m.Update(msg)
			m = updated.(Model)
			next = append(next, c)
		}
		cmd = tea.Batch(next...)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	updated, cmd := m.Update(k)
	return settle(t, updated.(Model), cmd)
}

func TestInit_LoadsStatus(t *testing.T) {
	ctrl := &fakeController{}
	m := New(context.Background(), ctrl, "RX-S602 at 192.168.1.50")

	m = settle(t, m, m.Init())

	if m.status == nil || m.status.Volume != 40 || m.status.Input != "net_radio" {
		t.Fatalf("status = %+v", m.status)
	}
	if m.playing == nil || m.playing.NowPlaying() != "Air - Talisman" {
		t.Fatalf("playing = %+v", m.playing)
	}

	view := m.View()
	for _, want := range []string{"MUSICCAST REMOTE", "RX-S602 at 192.168.1.50", "Air - Talisman", "40 / 161", "Ready"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestKeys_SendCommands(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want string
	}{
		{"play", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "play"},
		{"stop", runes("s"), "stop"},
		{"next", runes("n"), "next"},
		{"next arrow", tea.KeyMsg{Type: tea.KeyRight}, "next"},
		{"previous", runes("b"), "previous"},
		{"volume up", runes("+"), "volume_up"},
		{"volume down", runes("-"), "volume_down"},
		{"power", runes("p"), "power"},
		{"mute", runes("m"), "mute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &fakeController{}
			m := New(context.Background(), ctrl, "test")

			m = press(t, m, tt.key)

			if len(ctrl.calls) == 0 || ctrl.calls[0] != tt.want {
				t.Fatalf("calls = %v, want first %q", ctrl.calls, tt.want)
			}
			// A successful command refreshes the display
			if got := ctrl.calls[len(ctrl.calls)-1]; got != "play_info" {
				t.Errorf("last call = %q, want refresh", got)
			}
			if m.busy {
				t.Error("model should be idle after the command returns")
			}
			if m.lastResult != "Successful request" {
				t.Errorf("lastResult = %q", m.lastResult)
			}
		})
	}
}

func TestMute_TogglesOnStatus(t *testing.T) {
	ctrl := &fakeController{muted: true}
	m := New(context.Background(), ctrl, "test")
	m = settle(t, m, m.Init())

	ctrl.calls = nil
	m = press(t, m, runes("m"))

	if ctrl.calls[0] != "unmute" {
		t.Errorf("muted zone should be unmuted, calls = %v", ctrl.calls)
	}
	if m.lastAction != "Unmute" {
		t.Errorf("lastAction = %q", m.lastAction)
	}
}

func TestBusy_IgnoresKeys(t *testing.T) {
	ctrl := &fakeController{}
	m := New(context.Background(), ctrl, "test")

	updated, _ := m.Update(runes("n"))
	m = updated.(Model)
	if !m.busy || m.pending != "Next" {
		t.Fatalf("busy = %v pending = %q", m.busy, m.pending)
	}
	if !strings.Contains(m.View(), "Next...") {
		t.Error("View() should show the pending command")
	}

	updated, cmd := m.Update(runes("s"))
	if cmd != nil {
		t.Error("keys should be ignored while a command is in flight")
	}
	if updated.(Model).pending != "Next" {
		t.Error("pending command should not change")
	}
	if len(ctrl.calls) != 0 {
		t.Errorf("commands run lazily, calls = %v", ctrl.calls)
	}
}

func TestCommandFailure(t *testing.T) {
	ctrl := &fakeController{failOn: "play"}
	m := New(context.Background(), ctrl, "test")

	m = press(t, m, runes(" "))

	if m.lastErr == nil || !yxc.IsRetryable(m.lastErr) {
		t.Fatalf("lastErr = %v", m.lastErr)
	}
	if len(ctrl.calls) != 1 {
		t.Errorf("failed command should not trigger a refresh, calls = %v", ctrl.calls)
	}
	if !strings.Contains(m.View(), "Play:") {
		t.Error("View() should report the failed command")
	}
}

func TestEmptyResponse(t *testing.T) {
	ctrl := &fakeController{}
	m := New(context.Background(), ctrl, "test")

	updated, _ := m.Update(actionDoneMsg{label: "Stop", resp: yxc.Response{}})
	m = updated.(Model)

	if m.lastResult != "receiver returned no data" {
		t.Errorf("lastResult = %q", m.lastResult)
	}
}

func TestRefreshError(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "test")

	updated, _ := m.Update(refreshMsg{err: errors.New("boom")})
	m = updated.(Model)

	if m.lastErr == nil {
		t.Fatal("refresh error should be kept")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("View() should show the refresh error")
	}
}

func TestQuitAndHelp(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "test")

	updated, _ := m.Update(runes("?"))
	if !updated.(Model).help.ShowAll {
		t.Error("? should expand help")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestWindowSize(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "test")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = updated.(Model)

	if m.width != 90 || m.help.Width != 90 {
		t.Errorf("width = %d help.Width = %d", m.width, m.help.Width)
	}
}
