package repositories

import (
	"database/sql"
	"time"

	"github.com/aarondl/null/v8"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// nullOrString превращает null.String в аргумент запроса (nil для NULL).
func nullOrString(ns null.String) interface{} {
	if !ns.Valid {
		return nil
	}
	return ns.String
}

// nullOrInt превращает null.Int в аргумент запроса (nil для NULL).
func nullOrInt(ni null.Int) interface{} {
	if !ni.Valid {
		return nil
	}
	return ni.Int
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}

// formatDate возвращает "2006-01-02" или nil для NULL-колонок типа DATE.
func formatDate(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(dateLayout)
	return &s
}

func nullIntFrom(v sql.NullInt64) null.Int {
	return null.NewInt(int(v.Int64), v.Valid)
}

func nullStringFrom(v sql.NullString) null.String {
	return null.NewString(v.String, v.Valid)
}

func strPtrFrom(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
