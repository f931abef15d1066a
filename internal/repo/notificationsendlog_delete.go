// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notificationsendlog"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/predicate"
)

// NotificationSendLogDelete is the builder for deleting a NotificationSendLog entity.
type NotificationSendLogDelete struct {
	config
	hooks    []Hook
	mutation *NotificationSendLogMutation
}

// Where appends a list predicates to the NotificationSendLogDelete builder.
func (_d *NotificationSendLogDelete) Where(ps ...predicate.NotificationSendLog) *NotificationSendLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NotificationSendLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NotificationSendLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NotificationSendLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(notificationsendlog.Table, sqlgraph.NewFieldSpec(notificationsendlog.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// NotificationSendLogDeleteOne is the builder for deleting a single NotificationSendLog entity.
type NotificationSendLogDeleteOne struct {
	_d *NotificationSendLogDelete
}

// Where appends a list predicates to the NotificationSendLogDelete builder.
func (_d *NotificationSendLogDeleteOne) Where(ps ...predicate.NotificationSendLog) *NotificationSendLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NotificationSendLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{notificationsendlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NotificationSendLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
