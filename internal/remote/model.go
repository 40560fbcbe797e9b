package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/musiccast/internal/logging"
	"github.com/muurk/musiccast/internal/ui"
	"github.com/muurk/musiccast/internal/yxc"
)

// Controller is the subset of *yxc.Device the remote drives
type Controller interface {
	PowerToggle(ctx context.Context) (yxc.Response, error)
	Play(ctx context.Context) (yxc.Response, error)
	Stop(ctx context.Context) (yxc.Response, error)
	Next(ctx context.Context) (yxc.Response, error)
	Previous(ctx context.Context) (yxc.Response, error)
	IncreaseVolume(ctx context.Context) (yxc.Response, error)
	DecreaseVolume(ctx context.Context) (yxc.Response, error)
	Mute(ctx context.Context) (yxc.Response, error)
	Unmute(ctx context.Context) (yxc.Response, error)
	GetStatus(ctx context.Context) (yxc.Response, error)
	GetPlayInfo(ctx context.Context) (yxc.Response, error)
}

var _ Controller = (*yxc.Device)(nil)

type action func(ctx context.Context) (yxc.Response, error)

// actionDoneMsg is sent when a command to the receiver returns
type actionDoneMsg struct {
	label string
	resp  yxc.Response
	err   error
}

// refreshMsg carries a fresh snapshot of zone status and play info
type refreshMsg struct {
	status  *yxc.ZoneStatus
	playing *yxc.PlayInfo
	err     error
}

// Model is the interactive remote control
type Model struct {
	ctx   context.Context
	ctrl  Controller
	title string

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	busy    bool
	pending string

	status  *yxc.ZoneStatus
	playing *yxc.PlayInfo

	lastAction string
	lastResult string
	lastErr    error

	width  int
	height int
}

// New creates a remote for ctrl. title is shown in the header, usually
// the receiver's String().
func New(ctx context.Context, ctrl Controller, title string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.PrimaryColor)

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		title:   title,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: s,
		width:   ui.MinTerminalWidth,
	}
}

// Run starts the remote in the alternate screen and blocks until the user quits
func Run(ctx context.Context, ctrl Controller, title string) error {
	p := tea.NewProgram(New(ctx, ctrl, title), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init fetches the initial status
func (m Model) Init() tea.Cmd {
	return m.refresh()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionDoneMsg:
		m.busy = false
		m.pending = ""
		m.lastAction = msg.label
		m.lastErr = msg.err
		switch {
		case msg.err != nil:
			m.lastResult = yxc.GetShortErrorMessage(msg.err)
			return m, nil
		case msg.resp.IsEmpty():
			m.lastResult = "receiver returned no data"
		default:
			m.lastResult = yxc.ResponseCodeText(msg.resp.ResponseCode())
		}
		return m, m.refresh()

	case refreshMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		if msg.status != nil {
			m.status = msg.status
		}
		if msg.playing != nil {
			m.playing = msg.playing
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// One command in flight at a time
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Power):
		return m.start("Power", m.ctrl.PowerToggle)
	case key.Matches(msg, m.keys.Play):
		return m.start("Play", m.ctrl.Play)
	case key.Matches(msg, m.keys.Stop):
		return m.start("Stop", m.ctrl.Stop)
	case key.Matches(msg, m.keys.Next):
		return m.start("Next", m.ctrl.Next)
	case key.Matches(msg, m.keys.Previous):
		return m.start("Previous", m.ctrl.Previous)
	case key.Matches(msg, m.keys.VolumeUp):
		return m.start("Volume up", m.ctrl.IncreaseVolume)
	case key.Matches(msg, m.keys.VolumeDown):
		return m.start("Volume down", m.ctrl.DecreaseVolume)
	case key.Matches(msg, m.keys.Mute):
		if m.status != nil && m.status.Mute {
			return m.start("Unmute", m.ctrl.Unmute)
		}
		return m.start("Mute", m.ctrl.Mute)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()
	}

	return m, nil
}

func (m Model) start(label string, fn action) (tea.Model, tea.Cmd) {
	m.busy = true
	m.pending = label
	ctx := m.ctx
	run := func() tea.Msg {
		resp, err := fn(ctx)
		if err != nil {
			logging.Warn("Remote command failed", zap.String("command", label), zap.Error(err))
		}
		return actionDoneMsg{label: label, resp: resp, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m Model) refresh() tea.Cmd {
	ctx := m.ctx
	ctrl := m.ctrl
	return func() tea.Msg {
		var msg refreshMsg

		resp, err := ctrl.GetStatus(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		if !resp.IsEmpty() {
			if msg.status, err = yxc.ParseZoneStatus(resp); err != nil {
				return refreshMsg{err: err}
			}
		}

		resp, err = ctrl.GetPlayInfo(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		if !resp.IsEmpty() {
			if msg.playing, err = yxc.ParsePlayInfo(resp); err != nil {
				return refreshMsg{err: err}
			}
		}

		return msg
	}
}

// View renders the remote
func (m Model) View() string {
	width := m.width
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}

	sections := []string{
		titleStyle.Render("MUSICCAST REMOTE") + "  " + subtleStyle.Render(m.title),
		m.renderStatus(),
		m.renderNowPlaying(),
		m.renderLastResult(),
		m.help.View(m.keys),
	}

	return panelStyle.Width(width - 2).Render(strings.Join(sections, "\n\n"))
}

func (m Model) renderStatus() string {
	if m.status == nil {
		return labelStyle.Render("Zone") + subtleStyle.Render("unknown")
	}

	power := m.status.Power
	if power == yxc.PowerOn {
		power = onStyle.Render(power)
	} else {
		power = subtleStyle.Render(power)
	}

	volume := fmt.Sprintf("%d / %d", m.status.Volume, m.status.MaxVolume)
	if m.status.Mute {
		volume += " " + warnStyle.Render("muted")
	}

	return strings.Join([]string{
		labelStyle.Render("Power") + power,
		labelStyle.Render("Input") + valueStyle.Render(m.status.Input),
		labelStyle.Render("Volume") + valueStyle.Render(volume),
	}, "\n")
}

func (m Model) renderNowPlaying() string {
	if m.playing == nil {
		return labelStyle.Render("Playing") + subtleStyle.Render("unknown")
	}
	return strings.Join([]string{
		labelStyle.Render("Playing") + valueStyle.Render(m.playing.NowPlaying()),
		labelStyle.Render("Album") + valueStyle.Render(m.playing.Album),
		labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("[%s] %s / %s",
			m.playing.Playback, yxc.FormatSeconds(m.playing.PlayTime), yxc.FormatSeconds(m.playing.TotalTime))),
	}, "\n")
}

func (m Model) renderLastResult() string {
	if m.busy {
		return m.spinner.View() + " " + m.pending + "..."
	}
	if m.lastAction == "" {
		if m.lastErr != nil {
			return errorStyle.Render(ui.FailureMarker + " " + yxc.GetShortErrorMessage(m.lastErr))
		}
		return subtleStyle.Render("Ready")
	}
	if m.lastErr != nil {
		return errorStyle.Render(fmt.Sprintf("%s %s: %s", ui.FailureMarker, m.lastAction, m.lastResult))
	}
	return successStyle.Render(fmt.Sprintf("%s %s: %s", ui.SuccessMarker, m.lastAction, m.lastResult))
}
