package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sungheeyun-bit/tracker/internal/stats"
)

// PeriodChangedMsg is emitted whenever the picker moves to another month,
// year or timeframe.
type PeriodChangedMsg struct {
	Timeframe stats.Timeframe
	Period    stats.Period
}

// PeriodPicker cycles through the months and years a ledger spans. Years
// come from the history periods endpoint so the picker never points at an
// empty decade.
type PeriodPicker struct {
	timeframe stats.Timeframe
	period    stats.Period
	years     []int
}

func NewPeriodPicker() PeriodPicker {
	now := time.Now().UTC()

	return PeriodPicker{
		timeframe: stats.TimeframeMonth,
		period:    stats.Period{Year: now.Year(), Month: now.Month()},
		years:     []int{now.Year()},
	}
}

// SetYears replaces the selectable years, keeping the current selection when
// it is still present.
func (m *PeriodPicker) SetYears(years []int) {
	if len(years) == 0 {
		return
	}

	m.years = years

	for _, y := range years {
		if y == m.period.Year {
			return
		}
	}

	m.period.Year = years[len(years)-1]
}

func (m PeriodPicker) Timeframe() stats.Timeframe { return m.timeframe }
func (m PeriodPicker) Period() stats.Period       { return m.period }

// Range returns the inclusive calendar-day range the selection covers.
func (m PeriodPicker) Range() (time.Time, time.Time) {
	if m.timeframe == stats.TimeframeMonth {
		from := time.Date(m.period.Year, m.period.Month, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, -1)
	}

	from := time.Date(m.period.Year, time.January, 1, 0, 0, 0, 0, time.UTC)

	return from, time.Date(m.period.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func (m PeriodPicker) changed() tea.Cmd {
	msg := PeriodChangedMsg{Timeframe: m.timeframe, Period: m.period}

	return func() tea.Msg { return msg }
}

// Update handles the period navigation keys. Messages it does not recognize
// are ignored so the parent can mix it with other components.
func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "t":
		if m.timeframe == stats.TimeframeMonth {
			m.timeframe = stats.TimeframeYear
		} else {
			m.timeframe = stats.TimeframeMonth
		}

		return m, m.changed()

	case "left":
		if m.timeframe == stats.TimeframeMonth {
			if m.period.Month == time.January {
				m.period.Month = time.December
				m.shiftYear(-1)
			} else {
				m.period.Month--
			}
		} else {
			m.shiftYear(-1)
		}

		return m, m.changed()

	case "right":
		if m.timeframe == stats.TimeframeMonth {
			if m.period.Month == time.December {
				m.period.Month = time.January
				m.shiftYear(1)
			} else {
				m.period.Month++
			}
		} else {
			m.shiftYear(1)
		}

		return m, m.changed()
	}

	return m, nil
}

// shiftYear moves to the adjacent selectable year, clamping at the ends.
func (m *PeriodPicker) shiftYear(dir int) {
	idx := 0

	for i, y := range m.years {
		if y == m.period.Year {
			idx = i
			break
		}
	}

	idx += dir
	if idx < 0 || idx >= len(m.years) {
		return
	}

	m.period.Year = m.years[idx]
}

func (m PeriodPicker) View() string {
	label := fmt.Sprintf("%d", m.period.Year)
	if m.timeframe == stats.TimeframeMonth {
		label = fmt.Sprintf("%s %d", m.period.Month, m.period.Year)
	}

	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(label)

	return fmt.Sprintf("Period: %s  ([t] timeframe, ←/→ navigate)", styled)
}
