package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"gopkg.in/yaml.v2"
)

type yamlTable struct {
	Name    string     `yaml:"name"`
	Columns []string   `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
}

func createYamlReport(allTableValues []TableValues) (out []byte, err error) {
	tables := make([]yamlTable, 0, len(allTableValues))
	for _, tableValues := range allTableValues {
		table := yamlTable{Name: tableValues.Name}
		for _, field := range tableValues.Fields {
			table.Columns = append(table.Columns, field.Name)
		}
		table.Rows = tableValues.Rows()
		tables = append(tables, table)
	}
	return yaml.Marshal(tables)
}
