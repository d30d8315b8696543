package framework

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/tradepost/cmdargs/arguments"
)

// TextResult is a plain message result.
type TextResult struct {
	Text string `json:"text"`
}

// NewTextResult formats a TextResult.
func NewTextResult(format string, args ...any) *TextResult {
	return &TextResult{Text: fmt.Sprintf(format, args...)}
}

func (rs *TextResult) PrintAs(format Format) string {
	if format == FormatJSON {
		return MarshalJSON(rs)
	}
	return rs.Text
}

func (rs *TextResult) Entities() any {
	return rs.Text
}

// ContextResult lists the values a command line parsed into.
type ContextResult struct {
	Command string
	Values  []NamedValue
}

// NamedValue is a parsed value and the argument name it is stored under.
type NamedValue struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// NewContextResult captures the values of ctx in parse order.
func NewContextResult(command string, ctx *arguments.Context) *ContextResult {
	rs := &ContextResult{Command: command}
	for _, name := range ctx.Names() {
		v, _ := ctx.Get(name)
		rs.Values = append(rs.Values, NamedValue{Name: name, Value: v})
	}
	return rs
}

func (rs *ContextResult) PrintAs(format Format) string {
	switch format {
	case FormatJSON:
		return MarshalJSON(map[string]any{
			"command": rs.Command,
			"values":  rs.Values,
		})
	case FormatTable:
		t := table.NewWriter()
		t.SetTitle(rs.Command)
		t.AppendHeader(table.Row{"Argument", "Value", "Type"})
		for _, nv := range rs.Values {
			t.AppendRow(table.Row{nv.Name, fmt.Sprint(nv.Value), fmt.Sprintf("%T", nv.Value)})
		}
		return t.Render()
	default:
		sb := &strings.Builder{}
		fmt.Fprintf(sb, "%s\n", rs.Command)
		for _, nv := range rs.Values {
			fmt.Fprintf(sb, "  %s: %v\n", nv.Name, nv.Value)
		}
		return strings.TrimRight(sb.String(), "\n")
	}
}

func (rs *ContextResult) Entities() any {
	return rs.Values
}
