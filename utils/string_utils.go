package utils

import (
	"database/sql"
	"time"
)

// NullStringToStringPtr converts a sql.NullString to a *string.
func NullStringToStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// NullTimeToTimePtr converts a sql.NullTime to a *time.Time.
func NullTimeToTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

// NullFloatToFloatPtr converts a sql.NullFloat64 to a *float64.
func NullFloatToFloatPtr(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		f := nf.Float64
		return &f
	}
	return nil
}
