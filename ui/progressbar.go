package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nydauron/moisty/meetsetup"
)

type downloadStarted struct {
	total int
}

type meetFinished struct {
	name    string
	size    int
	skipped bool
	err     error
}

type downloadsDone struct{}

// DownloadModel renders the progress of a download run: one bar for the
// meets handled so far and the failures below it.
type DownloadModel struct {
	progress progress.Model
	spinner  spinner.Model
	cancel   context.CancelFunc

	total      int
	handled    int
	skipped    int
	totalBytes int64
	failures   []string
	finished   bool
}

func NewDownloadModel(cancel context.CancelFunc) DownloadModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	return DownloadModel{progress: progress.New(), spinner: s, cancel: cancel}
}

func (m DownloadModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case downloadStarted:
		m.total = msg.total
		return m, nil
	case meetFinished:
		m.handled++
		switch {
		case msg.err != nil:
			m.failures = append(m.failures, fmt.Sprintf("%s: %v", msg.name, msg.err))
		case msg.skipped:
			m.skipped++
		default:
			m.totalBytes += int64(msg.size)
		}
		return m, nil
	case downloadsDone:
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if !m.finished {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m DownloadModel) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.handled) / float64(m.total)
}

func (m DownloadModel) View() string {
	var b strings.Builder
	status := m.spinner.View()
	if m.finished {
		status = "✔"
	}
	scaledBytes, byteUnits := convertUpByteUnits(m.totalBytes)
	fmt.Fprintf(&b, "%s %s  %d/%d meets, %d cached, %4.2f%s\n",
		status, m.progress.ViewAs(m.percent()), m.handled, m.total, m.skipped, scaledBytes, byteUnits)
	for _, failure := range m.failures {
		fmt.Fprintf(&b, "❌ %s\n", failure)
	}
	return b.String()
}

// DownloadProgress shows a DownloadModel in the terminal and receives the
// progress of a download run.
type DownloadProgress struct {
	program *tea.Program
	done    chan struct{}
}

// NewDownloadProgress starts the view on out. cancel is called when the user
// interrupts the run. The downloads go on when the view cannot run.
func NewDownloadProgress(out io.Writer, cancel context.CancelFunc, logger *slog.Logger) *DownloadProgress {
	p := &DownloadProgress{
		program: tea.NewProgram(NewDownloadModel(cancel), tea.WithOutput(out)),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		if _, err := p.program.Run(); err != nil {
			logger.Debug("progress view stopped", "error", err)
		}
	}()
	return p
}

func (p *DownloadProgress) Start(total int) {
	p.program.Send(downloadStarted{total: total})
}

func (p *DownloadProgress) Skipped(info meetsetup.MeetInfo) {
	p.program.Send(meetFinished{name: info.Name, skipped: true})
}

func (p *DownloadProgress) Downloaded(info meetsetup.MeetInfo, size int) {
	p.program.Send(meetFinished{name: info.Name, size: size})
}

func (p *DownloadProgress) Failed(info meetsetup.MeetInfo, err error) {
	p.program.Send(meetFinished{name: info.Name, err: err})
}

// Finish renders the final state and waits for the view to exit.
func (p *DownloadProgress) Finish() {
	p.program.Send(downloadsDone{})
	<-p.done
}

const byteUnitFactor int64 = 1024

var byteUnitString = []string{"B", "kB", "MB", "GB", "TB"}

func convertUpByteUnits(amountBytes int64) (float64, string) {
	convertedByteCount := float64(amountBytes)
	factorPower := 0
	for amountBytes >= byteUnitFactor && factorPower < len(byteUnitString)-1 {
		amountBytes /= byteUnitFactor
		factorPower++
		convertedByteCount /= float64(byteUnitFactor)
	}

	return convertedByteCount, byteUnitString[factorPower]
}
