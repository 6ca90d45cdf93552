package database

import (
	"strings"
	"unicode/utf8"
)

// Suffixes of the default constraint names.
const (
	indexSuffix      = "_idx"
	uniqueSuffix     = "_key"
	primaryKeySuffix = "_pkey"
	foreignKeySuffix = "_fkey"
	defaultSuffix    = "_df"
)

// DefaultIndexName returns the name an @@index or @@fulltext gets in the
// database when no `map` argument is given: `{table}_{columns}_idx`.
func DefaultIndexName(table string, columns []string, maxLen int) string {
	return constraintName(table, columns, indexSuffix, maxLen)
}

// DefaultUniqueName returns the default name of a unique constraint: `{table}_{columns}_key`.
func DefaultUniqueName(table string, columns []string, maxLen int) string {
	return constraintName(table, columns, uniqueSuffix, maxLen)
}

// DefaultPrimaryKeyName returns the default name of a primary key: `{table}_pkey`.
func DefaultPrimaryKeyName(table string, maxLen int) string {
	return constraintName(table, nil, primaryKeySuffix, maxLen)
}

// DefaultForeignKeyName returns the default name of a foreign key: `{table}_{columns}_fkey`.
func DefaultForeignKeyName(table string, columns []string, maxLen int) string {
	return constraintName(table, columns, foreignKeySuffix, maxLen)
}

// DefaultDefaultValueName returns the default name of a default constraint: `{table}_{column}_df`.
func DefaultDefaultValueName(table, column string, maxLen int) string {
	return constraintName(table, []string{column}, defaultSuffix, maxLen)
}

// constraintName joins table and columns and truncates the result so that,
// with the suffix, it fits in maxLen bytes. maxLen <= 0 means no limit.
func constraintName(table string, columns []string, suffix string, maxLen int) string {
	joined := table
	if len(columns) > 0 {
		joined += "_" + strings.Join(columns, "_")
	}
	if maxLen > 0 && len(joined)+len(suffix) > maxLen {
		joined = truncateAtRune(joined, maxLen-len(suffix))
	}
	return joined + suffix
}

// truncateAtRune cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateAtRune(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
