package checks

import (
	"fmt"
	"strings"

	"warehouse-counter/core/database"
	"warehouse-counter/feature/inventory/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the products table with the model.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies the products table using the gorm model as the
// source of truth. Inspection failures are reported, not returned.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Table:          models.ProductRecord{}.TableName(),
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	actual, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", report.Table, err))
		report.Matched = false
		return report, nil
	}

	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[col.Field] = col
	}

	for _, col := range models.Columns() {
		act, ok := byName[col.Name]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, col.Name)
			report.Matched = false
			continue
		}
		if col.Type == "" {
			continue
		}
		if !sameType(col.Type, act.Type) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", col.Name, col.Type, act.Type))
			report.Matched = false
		}
	}
	return report, nil
}

// sameType is a soft comparison: MySQL reports "decimal(12,3)" and
// "varchar(36)" verbatim, sqlite keeps the declared text.
func sameType(expected, actual string) bool {
	expected = strings.ReplaceAll(expected, " ", "")
	actual = strings.ReplaceAll(actual, " ", "")
	return strings.Contains(actual, expected)
}
