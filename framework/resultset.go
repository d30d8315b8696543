package framework

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Format selects how a ResultSet is rendered.
type Format int32

const (
	FormatDefault Format = iota + 1
	FormatPlain
	FormatJSON
	FormatTable
)

// ErrUnknownFormat is returned by ParseFormat for names no renderer serves.
var ErrUnknownFormat = errors.New("unknown output format")

var formatNames = []string{"default", "plain", "json", "table"}

// String returns the name of f as accepted by ParseFormat.
func (f Format) String() string {
	if f < FormatDefault || int(f) > len(formatNames) {
		return formatNames[0]
	}
	return formatNames[f-1]
}

// FormatNames lists the output format names in declaration order.
func FormatNames() []string {
	return append([]string(nil), formatNames...)
}

// ParseFormat maps a format name to its Format.
func ParseFormat(name string) (Format, error) {
	idx := lo.IndexOf(formatNames, name)
	if idx < 0 {
		return FormatDefault, errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
	return Format(idx + 1), nil
}

// NameFormat is ParseFormat falling back to FormatDefault, for format names
// read from config or the environment.
func NameFormat(name string) Format {
	f, _ := ParseFormat(name)
	return f
}

// ResultSet is the interface for command result set.
type ResultSet interface {
	PrintAs(Format) string
	Entities() any
}

// PresetResultSet renders with the format it was created with, whatever the
// session format is.
type PresetResultSet struct {
	ResultSet
	format Format
}

func (rs *PresetResultSet) String() string {
	return rs.PrintAs(rs.format)
}

func NewPresetResultSet(rs ResultSet, format Format) *PresetResultSet {
	if format < FormatDefault {
		format = FormatDefault
	}
	return &PresetResultSet{
		ResultSet: rs,
		format:    format,
	}
}

// ListResultSet is embedded by results listing entities.
type ListResultSet[T any] struct {
	Data []T
}

func (rs *ListResultSet[T]) Entities() any {
	return rs.Data
}

func (rs *ListResultSet[T]) SetData(data []T) {
	rs.Data = data
}

// Len returns the number of listed entities.
func (rs *ListResultSet[T]) Len() int {
	return len(rs.Data)
}

// NewListResult builds the list result LRS around data.
func NewListResult[LRS any, P interface {
	*LRS
	SetData([]E)
}, E any](data []E) *LRS {
	var t LRS
	var p P = &t
	p.SetData(data)
	return &t
}

// MarshalJSON renders v as indented JSON, or the marshal error text.
func MarshalJSON(v any) string {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(bs)
}
