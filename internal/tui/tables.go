package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/medicore-hq/medicore/internal/model"
	"github.com/medicore-hq/medicore/internal/tui/themes"
)

func tableStyles(theme themes.Theme) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	return s
}

func newFinanceTable(theme themes.Theme, txns []model.FinancialTransaction) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 28},
		{Title: "Category", Width: 18},
		{Title: "Amount", Width: 12},
		{Title: "Status", Width: 10},
	}

	rows := make([]table.Row, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, table.Row{
			t.Date,
			t.Description,
			t.Category,
			fmt.Sprintf("$%.0f", t.Amount),
			string(t.Status),
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	tbl.SetStyles(tableStyles(theme))
	return tbl
}

func newInventoryTable(theme themes.Theme, items []model.InventoryItem) table.Model {
	columns := []table.Column{
		{Title: "Item", Width: 24},
		{Title: "Category", Width: 16},
		{Title: "Stock", Width: 8},
		{Title: "Reorder", Width: 8},
		{Title: "Unit", Width: 6},
		{Title: "Trend", Width: 8},
	}

	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		trend := "steady"
		if item.UsageRising() {
			trend = "rising"
		}
		rows = append(rows, table.Row{
			item.Name,
			item.Category,
			strconv.Itoa(item.CurrentStock),
			strconv.Itoa(item.ReorderPoint),
			item.Unit,
			trend,
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	tbl.SetStyles(tableStyles(theme))
	return tbl
}
