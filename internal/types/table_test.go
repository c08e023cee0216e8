package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTable() *Table {
	return &Table{
		Source: "day01.xlsx",
		Sheet:  "Sheet1",
		Header: []string{"Dimension", " Volumen_Ausgang ", "CE"},
		Rows: [][]string{
			{"75x75", "10", "1"},
			{"", "", ""},
			{" 100x50 ", "5"},
			{"", "", "", "extra"},
		},
	}
}

func TestTable_Width(t *testing.T) {
	assert.Equal(t, 4, sampleTable().Width())
	assert.Equal(t, 0, (&Table{}).Width())
}

func TestTable_ColumnIndex(t *testing.T) {
	tbl := sampleTable()

	assert.Equal(t, 0, tbl.ColumnIndex("Dimension"))
	assert.Equal(t, 1, tbl.ColumnIndex("Volumen_Ausgang"), "header is trimmed")
	assert.Equal(t, 2, tbl.ColumnIndex("CE"))
	assert.Equal(t, -1, tbl.ColumnIndex("ce"), "lookup is case-sensitive")
	assert.Equal(t, -1, tbl.ColumnIndex("Missing"))
}

func TestTable_Cell(t *testing.T) {
	tbl := sampleTable()

	assert.Equal(t, "75x75", tbl.Cell(0, 0))
	assert.Equal(t, "100x50", tbl.Cell(2, 0), "cells are trimmed")
	assert.Equal(t, "", tbl.Cell(2, 2), "short rows read as empty")
	assert.Equal(t, "", tbl.Cell(9, 0))
	assert.Equal(t, "", tbl.Cell(-1, 0))
	assert.Equal(t, "", tbl.Cell(0, -1))
}

func TestTable_IsBlankRow(t *testing.T) {
	tbl := sampleTable()

	assert.False(t, tbl.IsBlankRow(0))
	assert.True(t, tbl.IsBlankRow(1))
	assert.False(t, tbl.IsBlankRow(3))
	assert.True(t, tbl.IsBlankRow(10))
}
