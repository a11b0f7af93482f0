package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// Field and Type are lowercased.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string `gorm:"column:dflt_value"`
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field:   strings.ToLower(col.Name),
				Type:    strings.ToLower(col.Type),
				Default: col.DefaultVal,
			})
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// HasColumn reports whether tableName has a column called column.
func HasColumn(db *gorm.DB, tableName, column string) (bool, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return false, err
	}
	column = strings.ToLower(column)
	for _, c := range columns {
		if c.Field == column {
			return true, nil
		}
	}
	return false, nil
}

// MissingColumns returns, per table, the expected columns that do not exist.
// A table that does not exist at all reports every expected column.
func MissingColumns(db *gorm.DB, expected map[string][]string) (map[string][]string, error) {
	missing := make(map[string][]string)
	for table, want := range expected {
		columns, err := GetTableColumns(db, table)
		if err != nil {
			return nil, err
		}
		have := make(map[string]bool, len(columns))
		for _, c := range columns {
			have[c.Field] = true
		}
		for _, col := range want {
			if !have[strings.ToLower(col)] {
				missing[table] = append(missing[table], col)
			}
		}
	}
	return missing, nil
}
