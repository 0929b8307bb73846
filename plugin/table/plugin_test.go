package table_test

import (
	"strings"
	"testing"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/plugin/commonmark"
	"github.com/kaufmann-labs/htmd/plugin/table"
)

func TestTablePlugin_RegularTable(t *testing.T) {
	conv := converter.NewConverter(converter.WithPlugins(
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	))

	html := `<table>
		<thead><tr><th>A</th><th>B</th></tr></thead>
		<tbody>
			<tr><td>1</td><td>2</td></tr>
			<tr><td>3</td><td>4</td></tr>
		</tbody>
	</table>`

	got, err := conv.ConvertString(html)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	for _, want := range []string{"| A", "B", "| --- | --- |", "1", "3"} {
		if !strings.Contains(got, want) {
			t.Errorf("ConvertString() = %q, missing %q", got, want)
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(got), "|") {
		t.Errorf("ConvertString() = %q, want a pipe table", got)
	}
}

func TestTablePlugin_MinimalPadding(t *testing.T) {
	conv := converter.NewConverter(converter.WithPlugins(
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal)),
	))

	html := `<table><tr><th>A</th><th>Longer</th></tr><tr><td>x</td><td>y</td></tr></table>`
	got, err := conv.ConvertString(html)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	// minimal padding never pads a short cell out to the column's widest
	// cell, so the "x" row's cells stay exactly "| x |", not aligned to
	// "Longer"'s width.
	if !strings.Contains(got, "| x | y |") {
		t.Errorf("ConvertString() = %q, want unaligned minimal padding", got)
	}
}

func TestTablePlugin_IrregularTableFallsBackToDefault(t *testing.T) {
	conv := converter.NewConverter(converter.WithPlugins(
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	))

	// Ragged row (missing a cell) makes this an irregular table: the
	// table rule must decline, leaving the default block rule to render
	// cell text without pipes.
	html := `<table><tr><td>one</td><td>two</td></tr><tr><td>three</td></tr></table>`
	got, err := conv.ConvertString(html)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if strings.Contains(got, "|") {
		t.Errorf("ConvertString() = %q, expected no pipe table for an irregular table", got)
	}
	for _, want := range []string{"one", "two", "three"} {
		if !strings.Contains(got, want) {
			t.Errorf("ConvertString() = %q, missing %q", got, want)
		}
	}
}

func TestTablePlugin_ColspanFallsBackToDefault(t *testing.T) {
	conv := converter.NewConverter(converter.WithPlugins(
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	))

	html := `<table><tr><td colspan="2">merged</td></tr><tr><td>a</td><td>b</td></tr></table>`
	got, err := conv.ConvertString(html)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if strings.Contains(got, "|") {
		t.Errorf("ConvertString() = %q, expected no pipe table when a cell has colspan", got)
	}
}

func TestTablePlugin_NotInstalledLeavesDefaultBehavior(t *testing.T) {
	conv := converter.NewConverter(converter.WithPlugins(commonmark.NewCommonmarkPlugin()))
	got, err := conv.ConvertString(`<table><tr><td>a</td><td>b</td></tr></table>`)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if strings.Contains(got, "|") {
		t.Errorf("ConvertString() = %q, table plugin not installed, no pipes expected", got)
	}
}
