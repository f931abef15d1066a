// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notificationsendlog"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/predicate"
)

// NotificationSendLogUpdate is the builder for updating NotificationSendLog entities.
type NotificationSendLogUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationSendLogMutation
}

// Where appends a list predicates to the NotificationSendLogUpdate builder.
func (_u *NotificationSendLogUpdate) Where(ps ...predicate.NotificationSendLog) *NotificationSendLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *NotificationSendLogUpdate) SetCreatorID(v uuid.UUID) *NotificationSendLogUpdate {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableCreatorID(v *uuid.UUID) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *NotificationSendLogUpdate) SetOrganizationID(v uuid.UUID) *NotificationSendLogUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableOrganizationID(v *uuid.UUID) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *NotificationSendLogUpdate) ClearOrganizationID() *NotificationSendLogUpdate {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *NotificationSendLogUpdate) SetTitle(v string) *NotificationSendLogUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableTitle(v *string) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *NotificationSendLogUpdate) SetMessage(v string) *NotificationSendLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableMessage(v *string) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *NotificationSendLogUpdate) SetType(v notificationsendlog.Type) *NotificationSendLogUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableType(v *notificationsendlog.Type) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationSendLogUpdate) SetPriority(v notificationsendlog.Priority) *NotificationSendLogUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillablePriority(v *notificationsendlog.Priority) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLink sets the "link" field.
func (_u *NotificationSendLogUpdate) SetLink(v string) *NotificationSendLogUpdate {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableLink(v *string) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *NotificationSendLogUpdate) ClearLink() *NotificationSendLogUpdate {
	_u.mutation.ClearLink()
	return _u
}

// SetTargetType sets the "target_type" field.
func (_u *NotificationSendLogUpdate) SetTargetType(v notificationsendlog.TargetType) *NotificationSendLogUpdate {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableTargetType(v *notificationsendlog.TargetType) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// SetTargetCount sets the "target_count" field.
func (_u *NotificationSendLogUpdate) SetTargetCount(v int) *NotificationSendLogUpdate {
	_u.mutation.ResetTargetCount()
	_u.mutation.SetTargetCount(v)
	return _u
}

// SetNillableTargetCount sets the "target_count" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableTargetCount(v *int) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetTargetCount(*v)
	}
	return _u
}

// AddTargetCount adds value to the "target_count" field.
func (_u *NotificationSendLogUpdate) AddTargetCount(v int) *NotificationSendLogUpdate {
	_u.mutation.AddTargetCount(v)
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *NotificationSendLogUpdate) SetSentCount(v int) *NotificationSendLogUpdate {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableSentCount(v *int) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *NotificationSendLogUpdate) AddSentCount(v int) *NotificationSendLogUpdate {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *NotificationSendLogUpdate) SetFailedCount(v int) *NotificationSendLogUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableFailedCount(v *int) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *NotificationSendLogUpdate) AddFailedCount(v int) *NotificationSendLogUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationSendLogUpdate) SetSentAt(v time.Time) *NotificationSendLogUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationSendLogUpdate) SetNillableSentAt(v *time.Time) *NotificationSendLogUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// Mutation returns the NotificationSendLogMutation object of the builder.
func (_u *NotificationSendLogUpdate) Mutation() *NotificationSendLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationSendLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationSendLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationSendLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationSendLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationSendLogUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := notificationsendlog.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := notificationsendlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notificationsendlog.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Link(); ok {
		if err := notificationsendlog.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetType(); ok {
		if err := notificationsendlog.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.target_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationSendLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationsendlog.Table, notificationsendlog.Columns, sqlgraph.NewFieldSpec(notificationsendlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(notificationsendlog.FieldCreatorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(notificationsendlog.FieldOrganizationID, field.TypeUUID, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(notificationsendlog.FieldOrganizationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notificationsendlog.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notificationsendlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(notificationsendlog.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notificationsendlog.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(notificationsendlog.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(notificationsendlog.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(notificationsendlog.FieldTargetType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetCount(); ok {
		_spec.SetField(notificationsendlog.FieldTargetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetCount(); ok {
		_spec.AddField(notificationsendlog.FieldTargetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(notificationsendlog.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(notificationsendlog.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(notificationsendlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(notificationsendlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notificationsendlog.FieldSentAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationsendlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationSendLogUpdateOne is the builder for updating a single NotificationSendLog entity.
type NotificationSendLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationSendLogMutation
}

// SetCreatorID sets the "creator_id" field.
func (_u *NotificationSendLogUpdateOne) SetCreatorID(v uuid.UUID) *NotificationSendLogUpdateOne {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableCreatorID(v *uuid.UUID) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *NotificationSendLogUpdateOne) SetOrganizationID(v uuid.UUID) *NotificationSendLogUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *NotificationSendLogUpdateOne) ClearOrganizationID() *NotificationSendLogUpdateOne {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *NotificationSendLogUpdateOne) SetTitle(v string) *NotificationSendLogUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableTitle(v *string) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *NotificationSendLogUpdateOne) SetMessage(v string) *NotificationSendLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableMessage(v *string) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *NotificationSendLogUpdateOne) SetType(v notificationsendlog.Type) *NotificationSendLogUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableType(v *notificationsendlog.Type) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationSendLogUpdateOne) SetPriority(v notificationsendlog.Priority) *NotificationSendLogUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillablePriority(v *notificationsendlog.Priority) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLink sets the "link" field.
func (_u *NotificationSendLogUpdateOne) SetLink(v string) *NotificationSendLogUpdateOne {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableLink(v *string) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *NotificationSendLogUpdateOne) ClearLink() *NotificationSendLogUpdateOne {
	_u.mutation.ClearLink()
	return _u
}

// SetTargetType sets the "target_type" field.
func (_u *NotificationSendLogUpdateOne) SetTargetType(v notificationsendlog.TargetType) *NotificationSendLogUpdateOne {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableTargetType(v *notificationsendlog.TargetType) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// SetTargetCount sets the "target_count" field.
func (_u *NotificationSendLogUpdateOne) SetTargetCount(v int) *NotificationSendLogUpdateOne {
	_u.mutation.ResetTargetCount()
	_u.mutation.SetTargetCount(v)
	return _u
}

// SetNillableTargetCount sets the "target_count" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableTargetCount(v *int) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetTargetCount(*v)
	}
	return _u
}

// AddTargetCount adds value to the "target_count" field.
func (_u *NotificationSendLogUpdateOne) AddTargetCount(v int) *NotificationSendLogUpdateOne {
	_u.mutation.AddTargetCount(v)
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *NotificationSendLogUpdateOne) SetSentCount(v int) *NotificationSendLogUpdateOne {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableSentCount(v *int) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *NotificationSendLogUpdateOne) AddSentCount(v int) *NotificationSendLogUpdateOne {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *NotificationSendLogUpdateOne) SetFailedCount(v int) *NotificationSendLogUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableFailedCount(v *int) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *NotificationSendLogUpdateOne) AddFailedCount(v int) *NotificationSendLogUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationSendLogUpdateOne) SetSentAt(v time.Time) *NotificationSendLogUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationSendLogUpdateOne) SetNillableSentAt(v *time.Time) *NotificationSendLogUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// Mutation returns the NotificationSendLogMutation object of the builder.
func (_u *NotificationSendLogUpdateOne) Mutation() *NotificationSendLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationSendLogUpdate builder.
func (_u *NotificationSendLogUpdateOne) Where(ps ...predicate.NotificationSendLog) *NotificationSendLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationSendLogUpdateOne) Select(field string, fields ...string) *NotificationSendLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationSendLog entity.
func (_u *NotificationSendLogUpdateOne) Save(ctx context.Context) (*NotificationSendLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationSendLogUpdateOne) SaveX(ctx context.Context) *NotificationSendLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationSendLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationSendLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationSendLogUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := notificationsendlog.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := notificationsendlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notificationsendlog.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Link(); ok {
		if err := notificationsendlog.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetType(); ok {
		if err := notificationsendlog.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.target_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationSendLogUpdateOne) sqlSave(ctx context.Context) (_node *NotificationSendLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationsendlog.Table, notificationsendlog.Columns, sqlgraph.NewFieldSpec(notificationsendlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "NotificationSendLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationsendlog.FieldID)
		for _, f := range fields {
			if !notificationsendlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != notificationsendlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(notificationsendlog.FieldCreatorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(notificationsendlog.FieldOrganizationID, field.TypeUUID, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(notificationsendlog.FieldOrganizationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notificationsendlog.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notificationsendlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(notificationsendlog.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notificationsendlog.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(notificationsendlog.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(notificationsendlog.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(notificationsendlog.FieldTargetType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetCount(); ok {
		_spec.SetField(notificationsendlog.FieldTargetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetCount(); ok {
		_spec.AddField(notificationsendlog.FieldTargetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(notificationsendlog.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(notificationsendlog.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(notificationsendlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(notificationsendlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notificationsendlog.FieldSentAt, field.TypeTime, value)
	}
	_node = &NotificationSendLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationsendlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
