package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/mediaplan/internal/core"
	"github.com/janekbaraniewski/mediaplan/internal/format"
)

type fieldKind int

const (
	fieldName fieldKind = iota
	fieldCTR
	fieldCPC
	fieldConvRate
	fieldBudget
	fieldCount
)

type fieldSpec struct {
	label       string
	placeholder string
	width       int
	strip       func(string) string // applied on focus
	decorate    func(string) string // applied on blur
}

var fieldSpecs = [fieldCount]fieldSpec{
	fieldName:     {label: "Marketing Channel", placeholder: "Channel name", width: 20},
	fieldCTR:      {label: "CTR", placeholder: "Your CTR", width: 10, strip: format.StripPercentage, decorate: format.FormatPercentage},
	fieldCPC:      {label: "CPC", placeholder: "Your CPC", width: 12, strip: format.StripCurrency, decorate: format.FormatCurrency},
	fieldConvRate: {label: "Conv. Rate", placeholder: "Conv. rate", width: 10, strip: format.StripPercentage, decorate: format.FormatPercentage},
	fieldBudget:   {label: "Media Budget", placeholder: "Media cost", width: 16, strip: format.StripCurrency, decorate: format.FormatCurrency},
}

// formRow is one group of five inputs. Its position in Model.rows is the
// index of the channel record it edits.
type formRow struct {
	inputs [fieldCount]textinput.Model
}

func newFormRow() formRow {
	var r formRow
	for i := range r.inputs {
		spec := fieldSpecs[i]
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = spec.placeholder
		ti.Width = spec.width
		ti.CharLimit = 64
		r.inputs[i] = ti
	}
	return r
}

func (r formRow) value() core.RowInput {
	return core.RowInput{
		Name:           r.inputs[fieldName].Value(),
		CTR:            r.inputs[fieldCTR].Value(),
		CPC:            r.inputs[fieldCPC].Value(),
		ConversionRate: r.inputs[fieldConvRate].Value(),
		Budget:         r.inputs[fieldBudget].Value(),
	}
}

// set replaces the row text, decorating every numeric field.
func (r *formRow) set(in core.RowInput) {
	values := [fieldCount]string{in.Name, in.CTR, in.CPC, in.ConversionRate, in.Budget}
	for i, v := range values {
		if decorate := fieldSpecs[i].decorate; decorate != nil {
			v = decorate(v)
		}
		r.inputs[i].SetValue(v)
	}
}

func (r *formRow) clear() {
	for i := range r.inputs {
		r.inputs[i].SetValue("")
	}
}

// focus strips display decoration so the user edits the bare number.
func (r *formRow) focus(f fieldKind) tea.Cmd {
	in := &r.inputs[f]
	if strip := fieldSpecs[f].strip; strip != nil && in.Value() != "" {
		in.SetValue(strip(in.Value()))
		in.CursorEnd()
	}
	return in.Focus()
}

// blur re-applies decoration and reports whether the text changed.
func (r *formRow) blur(f fieldKind) bool {
	in := &r.inputs[f]
	in.Blur()
	decorate := fieldSpecs[f].decorate
	if decorate == nil {
		return false
	}
	before := in.Value()
	after := decorate(before)
	in.SetValue(after)
	return before != after
}

func (r formRow) view(index int, focused fieldKind, rowFocused bool) string {
	cells := make([]string, 0, fieldCount+1)
	cells = append(cells, rowNumberStyle.Render(strconv.Itoa(index+1)+"."))
	for i := range r.inputs {
		style := inputStyle
		if rowFocused && fieldKind(i) == focused {
			style = inputFocusedStyle
		}
		cells = append(cells, style.Width(fieldSpecs[i].width+2).Render(r.inputs[i].View()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func formHeader() string {
	cells := []string{rowNumberStyle.Render("#")}
	for _, spec := range fieldSpecs {
		cells = append(cells, labelStyle.Width(spec.width+2).Render(spec.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
