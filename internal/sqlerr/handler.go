package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/nested-comments/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TablePrefix marks the table a "no rows" error came from.
//
// Repositories wrap pgx.ErrNoRows as
//
//	fmt.Errorf("table:%s: %w", "comments", pgx.ErrNoRows)
//
// so HandleError can produce COMMENT_NOT_FOUND instead of RECORD_NOT_FOUND.
const TablePrefix = "table:"

// ErrCode reports the Code for err, or Other when err is not a database error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return NoRows
	}
	return Other
}

// ConvertPgError converts a raw *pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds <DOMAIN>_<ACTION> codes such as
// COMMENT_NOT_FOUND or POST_NOT_FOUND.
//
// DOMAIN is the table name, upper-cased and singularized by dropping a
// trailing "S". ACTION depends on the violation.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation, NoRows:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextValue:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// referencedTable returns the table a foreign key column points at, e.g.
// "post_id" -> "posts", "parent_id" -> "comments".
func referencedTable(sqlErr *Error) string {
	column := strings.ToLower(sqlErr.ColumnName)
	if column == "" {
		// Postgres leaves ColumnName empty on FK violations; the constraint
		// name (comments_post_id_fkey) still carries it.
		column = strings.TrimSuffix(strings.TrimPrefix(sqlErr.ConstraintName, sqlErr.TableName+"_"), "_fkey")
	}

	switch column {
	case "parent_id", "comment_id":
		return "comments"
	case "post_id":
		return "posts"
	case "user_id":
		return "users"
	}
	return sqlErr.TableName
}

// humanizeText converts snake_case into Title Case: "post_id" -> "Post Id".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a data-access error into the API's store-failure
// error.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: 500 with the Postgres message and a domain code
//   - ErrNoRows: 500 "<entity> not found" with a <DOMAIN>_NOT_FOUND code
//   - anything else: 500 with err.Error() as message
//
// The status is always 500: a missing post or a dangling parent id is a
// store failure from the API's point of view.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		table := sqlErr.TableName
		if sqlErr.Code == ForeignKeyViolation {
			table = referencedTable(sqlErr)
		}
		code := generateErrorCode(table, sqlErr.Code)

		return errs.NewStoreError(sqlErr.Message, &code)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		table := ""
		if msg := err.Error(); strings.Contains(msg, TablePrefix) {
			table = strings.Split(strings.Split(msg, TablePrefix)[1], ":")[0]
		}
		code := generateErrorCode(table, NoRows)

		entity := "record"
		if table != "" {
			entity = strings.ToLower(strings.TrimSuffix(table, "s"))
		}
		return errs.NewStoreError(fmt.Sprintf("%s not found", humanizeText(entity)), &code)
	}

	return errs.NewStoreError(err.Error(), nil)
}
