// Package repository holds the generic table access every domain repository
// embeds. Columns are read from the db/table/column struct tags of T.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/shared/constant"
	"hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var errRequiredFilter = errors.New("required filter")

const (
	lockForUpdate = " FOR UPDATE"
	actionDelete  = "delete data"
)

type column struct {
	name  string
	table string
	alias string
}

func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return c.table + "." + c.name + " AS " + c.alias
	default:
		return c.table + "." + c.name
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	insertColumns []string
	join          string
}

// NewRepository reads the column layout of T. A T with a GetJoinQuery method
// gets that join appended to every select.
func NewRepository[T any](entity, table, primaryColumn string, conn *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(table, reflect.TypeOf(zero))

	repo := Repository[T]{
		db:            conn,
		otel:          otl,
		table:         table,
		entity:        entity,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertColumns: insertColumns,
	}

	if joiner, ok := any(zero).(interface{ GetJoinQuery() string }); ok {
		repo.join = joiner.GetJoinQuery()
	}

	return repo
}

func (repo *Repository[T]) span(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)
}

// fail records err on the scope and wraps it with the operation that failed.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	scope.TraceError(err)

	if violation := repo.constraintFailure(action, err); violation != nil {
		return violation
	}

	logger.ErrorWithStack(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// query prepares a named statement on db and hands it to fn.
func (repo *Repository[T]) query(ctx context.Context, scope otel.Scope, db preparer, query string, fn func(*sqlx.NamedStmt) error) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	return fn(stmt)
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, exec execer, action, query string, arg any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.span(ctx, "insert")
	defer scope.End()

	placeholders := make([]string, len(repo.insertColumns))
	for i, col := range repo.insertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))

	return repo.exec(ctx, scope, exec, "insert data", query, model)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, model T) error {
	return repo.insert(ctx, tx, model)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.span(ctx, "Exist")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	err := repo.query(ctx, scope, repo.db.Read, "SELECT EXISTS(SELECT 1 FROM "+repo.table+where+")",
		func(stmt *sqlx.NamedStmt) error {
			if err := stmt.GetContext(ctx, &exist, args); err != nil {
				return repo.fail(scope, "check exist data", err)
			}

			return nil
		})

	return exist, err
}

func (repo *Repository[T]) get(ctx context.Context, db preparer, filter dto.FilterGroup, lock string, columns ...string) (T, error) {
	ctx, scope := repo.span(ctx, "get")
	defer scope.End()

	where, args := whereClause(filter)
	query := "SELECT " + repo.selectList(columns) + " FROM " + repo.source() + where + lock

	var model T

	err := repo.query(ctx, scope, db, query, func(stmt *sqlx.NamedStmt) error {
		err := stmt.GetContext(ctx, &model, args)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return repo.fail(scope, "get data", err)
		}

		return nil
	})

	return model, err
}

// Get returns the zero value of T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, repo.db.Read, filter, constant.Empty, columns...)
}

func (repo *Repository[T]) GetTx(ctx context.Context, tx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, tx, filter, constant.Empty, columns...)
}

// GetForUpdateTx locks the matched row until the transaction ends.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, tx, filter, lockForUpdate, columns...)
}

// GetAll pages through the matched rows. Ties in the requested ordering are
// broken by the primary column so pages never overlap.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.span(ctx, "GetAll")
	defer scope.End()

	where, args := whereClause(filter)

	var ordering, pagination string

	if params.SortBy != "" && params.SortDir != "" {
		sortBy := params.SortBy
		if !strings.Contains(sortBy, ".") {
			sortBy = repo.table + "." + sortBy
		}

		ordering = " ORDER BY " + sortBy + " " + params.SortDir

		if primary := repo.table + "." + repo.primaryColumn; sortBy != primary {
			ordering += ", " + primary
		}
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		pagination = " LIMIT :limit"

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			pagination += " OFFSET :offset"
		}
	}

	query := "SELECT " + repo.selectList(columns) + " FROM " + repo.source() + where + ordering + pagination

	var models []T

	err := repo.query(ctx, scope, repo.db.Read, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.SelectContext(ctx, &models, args); err != nil {
			return repo.fail(scope, "get all data", err)
		}

		return nil
	})

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.span(ctx, "Count")
	defer scope.End()

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primaryColumn, repo.source(), where)

	var count int

	err := repo.query(ctx, scope, repo.db.Read, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.GetContext(ctx, &count, args); err != nil {
			return repo.fail(scope, "count data", err)
		}

		return nil
	})

	return count, err
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "delete")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, scope, exec, actionDelete, "DELETE FROM "+repo.table+where, args)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.delete(ctx, repo.db.Write, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, tx *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.delete(ctx, tx, filter)
}

// update sets the columns named by the keys of fields. Columns are written in
// sorted order so the same change always produces the same statement.
func (repo *Repository[T]) update(ctx context.Context, exec execer, fields map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "update")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(fields))
	for _, col := range slices.Sorted(maps.Keys(fields)) {
		assignments = append(assignments, col+" = :"+col)
	}

	maps.Copy(args, fields)

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)

	return repo.exec(ctx, scope, exec, "update data", query, args)
}

func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, fields, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, tx, fields, filter)
}

// source is the table with its join, if any.
func (repo *Repository[T]) source() string {
	if repo.join == "" {
		return repo.table
	}

	return repo.table + " " + repo.join
}

// selectList renders the select columns, restricted to only when given.
func (repo *Repository[T]) selectList(only []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return strings.Join(exprs, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

// getColumns walks the struct fields of t, descending into embedded structs.
// Only fields that belong to table are inserted; joined fields carry a table tag.
func getColumns(table string, t reflect.Type) (columns []column, insertColumns []string) {
	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)
		}

		name := field.Tag.Get("db")
		if name == "" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, name)
		}

		if source := field.Tag.Get("column"); source != "" {
			columns = append(columns, column{name: source, table: owner, alias: name})
		} else {
			columns = append(columns, column{name: name, table: owner})
		}
	}

	return columns, insertColumns
}

// constraintFailure maps constraint violations to client errors.
// A foreign key violation on delete means the row is still referenced.
func (repo *Repository[T]) constraintFailure(action string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return failure.Duplicate(repo.entity, constraintKey(repo.table, pqErr.Constraint))
	case constant.PqErrorCodeFkViolation:
		if action == actionDelete {
			return failure.Conflict(repo.entity + " is still referenced by other records")
		}

		return failure.BadRequestFromString(repo.entity + " references a record that does not exist")
	case constant.PqErrorCodeCheckViolation:
		return failure.Conflict(repo.entity + " breaks the " + constraintKey(repo.table, pqErr.Constraint) + " rule")
	default:
		return nil
	}
}

// constraintKey turns "ux_students_roll_no" or "students_roll_no_key" into "roll no".
func constraintKey(table, constraint string) string {
	key := strings.TrimSuffix(constraint, "_key")
	for _, prefix := range []string{"ux_", "ck_", table + "_"} {
		key = strings.TrimPrefix(key, prefix)
	}

	if key == constant.Empty || key == table {
		return "value"
	}

	return strings.ReplaceAll(key, "_", " ")
}
