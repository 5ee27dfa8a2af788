package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esportlab/elab/pkg/schedule"
	"github.com/esportlab/elab/pkg/ui/common"
	"github.com/matryer/is"
)

func testForm(t *testing.T) *Form {
	t.Helper()
	c := common.NewCommon(context.TODO(), lipgloss.DefaultRenderer(), 80, 24)
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	start, end := schedule.QuickAddDefaults(day)
	return NewForm(c, time.UTC, day, nil, start, end)
}

func TestFailedSaveReopensForm(t *testing.T) {
	is := is.New(t)
	f := testForm(t)
	f.state = formSubmitting

	m, _ := f.Update(formErrorMsg{errors.New("boom")})
	f = m.(*Form)
	is.Equal(f.state, formEditing)
	is.Equal(f.lastErr, "boom")

	// Enter resubmits with the values still in place.
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	is.True(cmd != nil)
	is.Equal(f.state, formSubmitting)
}

func TestCancelAfterFailedSave(t *testing.T) {
	is := is.New(t)
	f := testForm(t)
	f.state = formSubmitting

	m, _ := f.Update(formErrorMsg{errors.New("backend unavailable")})
	f = m.(*Form)

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	is.True(cmd != nil)
	is.Equal(cmd(), tea.Msg(FormClosedMsg{}))
}
