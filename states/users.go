package states

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/tradepost/cmdargs/framework"
	"github.com/tradepost/cmdargs/matching"
	"github.com/tradepost/cmdargs/roster"
)

// UserList is the result of who.
type UserList struct {
	framework.ListResultSet[*roster.User]
}

func (rs *UserList) PrintAs(format framework.Format) string {
	switch format {
	case framework.FormatJSON:
		return framework.MarshalJSON(rs.Data)
	case framework.FormatTable:
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Name", "Label", "ID", "Flags"})
		for _, u := range rs.Data {
			t.AppendRow(table.Row{u.Name(), matching.StripMarkup(u.DisplayName()), u.ID(), flags(u)})
		}
		t.AppendFooter(table.Row{"", "", "Total", len(rs.Data)})
		return t.Render()
	default:
		sb := &strings.Builder{}
		for _, u := range rs.Data {
			fmt.Fprintf(sb, "%s\t%s\t%s\n", u.Name(), u.ID(), flags(u))
		}
		fmt.Fprintf(sb, "--- Total User(s): %d", len(rs.Data))
		return sb.String()
	}
}

func flags(u *roster.User) string {
	var fs []string
	if u.Admin {
		fs = append(fs, "admin")
	}
	if u.Vanished {
		fs = append(fs, "vanished")
	}
	return strings.Join(fs, ",")
}

// UserDetail is the result of whois.
type UserDetail struct {
	User    *roster.User `json:"user"`
	Balance int64        `json:"balance"`
}

func (rs *UserDetail) PrintAs(format framework.Format) string {
	if format == framework.FormatJSON {
		return framework.MarshalJSON(rs)
	}
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Name:    %s\n", rs.User.Name())
	if label := matching.StripMarkup(rs.User.DisplayName()); label != "" {
		fmt.Fprintf(sb, "Label:   %s\n", label)
	}
	fmt.Fprintf(sb, "ID:      %s\n", rs.User.ID())
	if f := flags(rs.User); f != "" {
		fmt.Fprintf(sb, "Flags:   %s\n", f)
	}
	fmt.Fprintf(sb, "Balance: %d", rs.Balance)
	return sb.String()
}

func (rs *UserDetail) Entities() any {
	return rs.User
}
