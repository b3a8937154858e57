// Package report turns scraped benchmark results into terminal tables and
// CSV/YAML/XLSX artifacts.
package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import "fmt"

// Field represents the values for one column of a table.
type Field struct {
	Name   string
	Values []string
}

// TableValues is one named table of benchmark results, one row per run.
type TableValues struct {
	Name        string
	Fields      []Field
	NoDataFound string // message to display when the table has no rows
}

// NewTable builds a TableValues from a column header and rows. Short rows are
// padded so every field carries the same number of values.
func NewTable(name string, columns []string, rows [][]string) TableValues {
	fields := make([]Field, len(columns))
	for i, col := range columns {
		fields[i] = Field{Name: col}
	}
	for _, row := range rows {
		for i := range fields {
			var value string
			if i < len(row) {
				value = row[i]
			}
			fields[i].Values = append(fields[i].Values, value)
		}
	}
	return TableValues{Name: name, Fields: fields}
}

// AddRow appends one row of values to the table's fields.
func (t *TableValues) AddRow(row []string) {
	for i := range t.Fields {
		var value string
		if i < len(row) {
			value = row[i]
		}
		t.Fields[i].Values = append(t.Fields[i].Values, value)
	}
}

// Rows returns the table's values in row order.
func (t *TableValues) Rows() [][]string {
	if len(t.Fields) == 0 {
		return nil
	}
	rows := make([][]string, len(t.Fields[0].Values))
	for i := range rows {
		row := make([]string, len(t.Fields))
		for j, field := range t.Fields {
			row[j] = field.Values[i]
		}
		rows[i] = row
	}
	return rows
}

func validateTableValues(tableValues TableValues) error {
	if tableValues.Name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if len(tableValues.Fields) == 0 {
		return nil // no fields is a valid state
	}
	numEntries := len(tableValues.Fields[0].Values)
	for i, field := range tableValues.Fields {
		if field.Name == "" {
			return fmt.Errorf("table %s, field %d, name cannot be empty", tableValues.Name, i)
		}
		if len(field.Values) != numEntries {
			return fmt.Errorf("table %s, field %s, expected %d value(s), found %d", tableValues.Name, field.Name, numEntries, len(field.Values))
		}
	}
	return nil
}
