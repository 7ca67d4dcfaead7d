package psqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect SQL диалект хранилища
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect проверяет имя драйвера из конфигурации
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case Postgres, SQLite:
		return Dialect(s), nil
	default:
		return "", fmt.Errorf("unsupported storage driver %q", s)
	}
}

// Builder возвращает squirrel builder с плейсхолдерами нужного диалекта:
// $1, $2 для postgres и ? для sqlite
func Builder(d Dialect) squirrel.StatementBuilderType {
	if d == SQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
