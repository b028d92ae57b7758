package repository

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

type column struct {
	name     string
	table    string
	writable bool
}

type columns []column

// getColumns walks the db tags of t, descending into embedded structs such as model.Metadata.
func getColumns(table string, t reflect.Type) columns {
	var cols columns

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols = append(cols, getColumns(table, field.Type)...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		cols = append(cols, column{name: name, table: table, writable: field.Tag.Get("insert") != "false"})
	}

	return cols
}

// selectList returns the qualified column list, restricted to only when given.
func (c columns) selectList(only ...string) string {
	names := make([]string, 0, len(c))

	for _, col := range c {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		names = append(names, col.table+"."+col.name)
	}

	return strings.Join(names, ", ")
}

func (c columns) insertQuery(table string) string {
	names := make([]string, 0, len(c))
	params := make([]string, 0, len(c))

	for _, col := range c {
		if !col.writable {
			continue
		}

		names = append(names, col.name)
		params = append(params, ":"+col.name)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(names, ", "), strings.Join(params, ", "), c.selectList())
}
