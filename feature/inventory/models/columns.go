package models

import (
	"reflect"
	"strings"
)

// Column is a persisted column as declared by the gorm tags.
type Column struct {
	Name string
	// Type is the declared SQL type, empty when gorm picks it.
	Type string
}

// Columns lists the columns of the products table in field order.
func Columns() []Column {
	return columnsOf(reflect.TypeOf(ProductRecord{}))
}

// ColumnNames lists the column names of the products table.
func ColumnNames() []string {
	cols := Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func columnsOf(t reflect.Type) []Column {
	var out []Column
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		name := tagValue(tag, "column")
		if name == "" {
			continue
		}
		out = append(out, Column{Name: name, Type: strings.ToLower(tagValue(tag, "type"))})
	}
	return out
}

func tagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key+":") {
			return strings.TrimPrefix(p, key+":")
		}
	}
	return ""
}
