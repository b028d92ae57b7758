// Package repository holds the generic table gateway the domain repositories embed.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"guestlist/infras/otel"
	"guestlist/infras/postgres"
	"guestlist/shared/constant"
	"guestlist/shared/dto"
	"guestlist/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"
)

var errRequiredFilter = errors.New("required filter")

// Repository maps T onto a single table. Columns come from the `db` tags of T; fields tagged
// `insert:"false"` are filled by the database and read back after an insert.
type Repository[T any] struct {
	db     *postgres.Connection
	otel   otel.Otel
	table  string
	entity string
	key    string
	cols   columns
}

func NewRepository[T any](entity, table, key string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:     db,
		otel:   otl,
		table:  table,
		entity: entity,
		key:    key,
		cols:   getColumns(table, reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return ctx, scope
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// Insert stores model and returns the row as persisted, generated columns included.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (T, error) {
	query := repo.cols.insertQuery(repo.table)
	ctx, scope := repo.scope(ctx, "Insert", query)
	defer scope.End()

	var inserted T

	stmt, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		return inserted, repo.fail(scope, "prepare insert", err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &inserted, model); err != nil {
		return inserted, repo.fail(scope, "insert data", err)
	}

	return inserted, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where)
	ctx, scope := repo.scope(ctx, "Exist", query)
	defer scope.End()

	var exist bool

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return false, repo.fail(scope, "prepare exist check", err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &exist, args); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.cols.selectList(columns...), repo.table, where)

	ctx, scope := repo.scope(ctx, "Get", query)
	defer scope.End()

	var model T

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare get", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

// GetAll returns every row matching filter. Ordering is applied only when both sort fields are set.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s%s", repo.cols.selectList(columns...), repo.table, where, orderBy(params))

	ctx, scope := repo.scope(ctx, "GetAll", query)
	defer scope.End()

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare get all", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	where, args := BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)
	ctx, scope := repo.scope(ctx, "Delete", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "delete data", err)
	}

	return nil
}

// Update sets the given columns on the matching rows. An empty change set is a no-op.
func (repo *Repository[T]) Update(ctx context.Context, changes map[string]any, filter dto.FilterGroup) error {
	if len(changes) == 0 {
		return nil
	}

	where, args := BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	set := setClause(changes, args)
	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, set, where)

	ctx, scope := repo.scope(ctx, "Update", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

// BuildWhereClause renders filter as a WHERE clause with a leading space, or "" for an empty filter.
func BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

// setClause adds the new values to args under a set_ prefix so they never clash with filter arguments.
func setClause(changes map[string]any, args map[string]any) string {
	parts := make([]string, 0, len(changes))

	for _, col := range slices.Sorted(maps.Keys(changes)) {
		parts = append(parts, fmt.Sprintf("%s = :set_%s", col, col))
		args["set_"+col] = changes[col]
	}

	return strings.Join(parts, ", ")
}

func orderBy(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	return fmt.Sprintf(" ORDER BY %s %s", params.SortBy, params.SortDir)
}
