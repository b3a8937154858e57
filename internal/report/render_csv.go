package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"encoding/csv"
)

func createCsvReport(allTableValues []TableValues) (out []byte, err error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for tableIdx, tableValues := range allTableValues {
		if tableIdx > 0 {
			// blank line between tables
			buf.WriteString("\n")
		}
		if err = writer.Write([]string{"## " + tableValues.Name}); err != nil {
			return
		}
		header := make([]string, len(tableValues.Fields))
		for i, field := range tableValues.Fields {
			header[i] = field.Name
		}
		if err = writer.Write(header); err != nil {
			return
		}
		for _, row := range tableValues.Rows() {
			if err = writer.Write(row); err != nil {
				return
			}
		}
		writer.Flush()
	}
	if err = writer.Error(); err != nil {
		return
	}
	out = buf.Bytes()
	return
}
