package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strings"
)

func createTextReport(allTableValues []TableValues) (out []byte, err error) {
	var sb strings.Builder
	for _, tableValues := range allTableValues {
		sb.WriteString(fmt.Sprintf("%s\n", tableValues.Name))
		for range len(tableValues.Name) {
			sb.WriteString("=")
		}
		sb.WriteString("\n")
		if len(tableValues.Fields) == 0 || len(tableValues.Fields[0].Values) == 0 {
			msg := noDataFound
			if tableValues.NoDataFound != "" {
				msg = tableValues.NoDataFound
			}
			sb.WriteString(msg + "\n\n")
			continue
		}
		sb.WriteString(renderTextTable(tableValues))
		sb.WriteString("\n")
	}
	out = []byte(sb.String())
	return
}

func renderTextTable(tableValues TableValues) string {
	var sb strings.Builder
	// find the longest item per column -- can be the field name (column
	// header) or a value
	maxFieldLen := make(map[string]int)
	for i, field := range tableValues.Fields {
		// the last column shouldn't occupy more space than the value
		if i == len(tableValues.Fields)-1 {
			maxFieldLen[field.Name] = 0
			continue
		}
		maxFieldLen[field.Name] = len(field.Name)
		for _, val := range field.Values {
			if len(val) > maxFieldLen[field.Name] {
				maxFieldLen[field.Name] = len(val)
			}
		}
	}
	columnSpacing := 3
	// print the field names
	for _, field := range tableValues.Fields {
		sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[field.Name]+columnSpacing, field.Name))
	}
	sb.WriteString("\n")
	// underline the field names
	for _, field := range tableValues.Fields {
		underline := strings.Repeat("-", len(field.Name))
		sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[field.Name]+columnSpacing, underline))
	}
	sb.WriteString("\n")
	// print the rows
	numRows := len(tableValues.Fields[0].Values)
	for row := range numRows {
		for _, field := range tableValues.Fields {
			sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[field.Name]+columnSpacing, field.Values[row]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
