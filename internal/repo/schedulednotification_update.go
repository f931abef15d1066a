// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/predicate"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/schedulednotification"
)

// ScheduledNotificationUpdate is the builder for updating ScheduledNotification entities.
type ScheduledNotificationUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledNotificationMutation
}

// Where appends a list predicates to the ScheduledNotificationUpdate builder.
func (_u *ScheduledNotificationUpdate) Where(ps ...predicate.ScheduledNotification) *ScheduledNotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledNotificationUpdate) SetUpdatedAt(v time.Time) *ScheduledNotificationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *ScheduledNotificationUpdate) SetCreatorID(v uuid.UUID) *ScheduledNotificationUpdate {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableCreatorID(v *uuid.UUID) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ScheduledNotificationUpdate) SetOrganizationID(v uuid.UUID) *ScheduledNotificationUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableOrganizationID(v *uuid.UUID) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *ScheduledNotificationUpdate) ClearOrganizationID() *ScheduledNotificationUpdate {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetTargetType sets the "target_type" field.
func (_u *ScheduledNotificationUpdate) SetTargetType(v schedulednotification.TargetType) *ScheduledNotificationUpdate {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableTargetType(v *schedulednotification.TargetType) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// SetTargetIds sets the "target_ids" field.
func (_u *ScheduledNotificationUpdate) SetTargetIds(v []string) *ScheduledNotificationUpdate {
	_u.mutation.SetTargetIds(v)
	return _u
}

// AppendTargetIds appends value to the "target_ids" field.
func (_u *ScheduledNotificationUpdate) AppendTargetIds(v []string) *ScheduledNotificationUpdate {
	_u.mutation.AppendTargetIds(v)
	return _u
}

// ClearTargetIds clears the value of the "target_ids" field.
func (_u *ScheduledNotificationUpdate) ClearTargetIds() *ScheduledNotificationUpdate {
	_u.mutation.ClearTargetIds()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ScheduledNotificationUpdate) SetTitle(v string) *ScheduledNotificationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableTitle(v *string) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScheduledNotificationUpdate) SetMessage(v string) *ScheduledNotificationUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableMessage(v *string) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ScheduledNotificationUpdate) SetType(v schedulednotification.Type) *ScheduledNotificationUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableType(v *schedulednotification.Type) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ScheduledNotificationUpdate) SetPriority(v schedulednotification.Priority) *ScheduledNotificationUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillablePriority(v *schedulednotification.Priority) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLink sets the "link" field.
func (_u *ScheduledNotificationUpdate) SetLink(v string) *ScheduledNotificationUpdate {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableLink(v *string) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *ScheduledNotificationUpdate) ClearLink() *ScheduledNotificationUpdate {
	_u.mutation.ClearLink()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledNotificationUpdate) SetScheduledFor(v time.Time) *ScheduledNotificationUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableScheduledFor(v *time.Time) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledNotificationUpdate) SetStatus(v schedulednotification.Status) *ScheduledNotificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableStatus(v *schedulednotification.Status) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ScheduledNotificationUpdate) SetFailureReason(v string) *ScheduledNotificationUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableFailureReason(v *string) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ScheduledNotificationUpdate) ClearFailureReason() *ScheduledNotificationUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ScheduledNotificationUpdate) SetSentAt(v time.Time) *ScheduledNotificationUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ScheduledNotificationUpdate) SetNillableSentAt(v *time.Time) *ScheduledNotificationUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ScheduledNotificationUpdate) ClearSentAt() *ScheduledNotificationUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the ScheduledNotificationMutation object of the builder.
func (_u *ScheduledNotificationUpdate) Mutation() *ScheduledNotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledNotificationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledNotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledNotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledNotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledNotificationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedulednotification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledNotificationUpdate) check() error {
	if v, ok := _u.mutation.TargetType(); ok {
		if err := schedulednotification.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.target_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := schedulednotification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := schedulednotification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := schedulednotification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Link(); ok {
		if err := schedulednotification.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := schedulednotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledNotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulednotification.Table, schedulednotification.Columns, sqlgraph.NewFieldSpec(schedulednotification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulednotification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(schedulednotification.FieldCreatorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(schedulednotification.FieldOrganizationID, field.TypeUUID, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(schedulednotification.FieldOrganizationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(schedulednotification.FieldTargetType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetIds(); ok {
		_spec.SetField(schedulednotification.FieldTargetIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedulednotification.FieldTargetIds, value)
		})
	}
	if _u.mutation.TargetIdsCleared() {
		_spec.ClearField(schedulednotification.FieldTargetIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(schedulednotification.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(schedulednotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(schedulednotification.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(schedulednotification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(schedulednotification.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(schedulednotification.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(schedulednotification.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulednotification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(schedulednotification.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(schedulednotification.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(schedulednotification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(schedulednotification.FieldSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulednotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledNotificationUpdateOne is the builder for updating a single ScheduledNotification entity.
type ScheduledNotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledNotificationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledNotificationUpdateOne) SetUpdatedAt(v time.Time) *ScheduledNotificationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *ScheduledNotificationUpdateOne) SetCreatorID(v uuid.UUID) *ScheduledNotificationUpdateOne {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableCreatorID(v *uuid.UUID) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ScheduledNotificationUpdateOne) SetOrganizationID(v uuid.UUID) *ScheduledNotificationUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *ScheduledNotificationUpdateOne) ClearOrganizationID() *ScheduledNotificationUpdateOne {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetTargetType sets the "target_type" field.
func (_u *ScheduledNotificationUpdateOne) SetTargetType(v schedulednotification.TargetType) *ScheduledNotificationUpdateOne {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableTargetType(v *schedulednotification.TargetType) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// SetTargetIds sets the "target_ids" field.
func (_u *ScheduledNotificationUpdateOne) SetTargetIds(v []string) *ScheduledNotificationUpdateOne {
	_u.mutation.SetTargetIds(v)
	return _u
}

// AppendTargetIds appends value to the "target_ids" field.
func (_u *ScheduledNotificationUpdateOne) AppendTargetIds(v []string) *ScheduledNotificationUpdateOne {
	_u.mutation.AppendTargetIds(v)
	return _u
}

// ClearTargetIds clears the value of the "target_ids" field.
func (_u *ScheduledNotificationUpdateOne) ClearTargetIds() *ScheduledNotificationUpdateOne {
	_u.mutation.ClearTargetIds()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ScheduledNotificationUpdateOne) SetTitle(v string) *ScheduledNotificationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableTitle(v *string) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScheduledNotificationUpdateOne) SetMessage(v string) *ScheduledNotificationUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableMessage(v *string) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ScheduledNotificationUpdateOne) SetType(v schedulednotification.Type) *ScheduledNotificationUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableType(v *schedulednotification.Type) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ScheduledNotificationUpdateOne) SetPriority(v schedulednotification.Priority) *ScheduledNotificationUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillablePriority(v *schedulednotification.Priority) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLink sets the "link" field.
func (_u *ScheduledNotificationUpdateOne) SetLink(v string) *ScheduledNotificationUpdateOne {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableLink(v *string) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *ScheduledNotificationUpdateOne) ClearLink() *ScheduledNotificationUpdateOne {
	_u.mutation.ClearLink()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledNotificationUpdateOne) SetScheduledFor(v time.Time) *ScheduledNotificationUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableScheduledFor(v *time.Time) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledNotificationUpdateOne) SetStatus(v schedulednotification.Status) *ScheduledNotificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableStatus(v *schedulednotification.Status) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ScheduledNotificationUpdateOne) SetFailureReason(v string) *ScheduledNotificationUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableFailureReason(v *string) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ScheduledNotificationUpdateOne) ClearFailureReason() *ScheduledNotificationUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ScheduledNotificationUpdateOne) SetSentAt(v time.Time) *ScheduledNotificationUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ScheduledNotificationUpdateOne) SetNillableSentAt(v *time.Time) *ScheduledNotificationUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ScheduledNotificationUpdateOne) ClearSentAt() *ScheduledNotificationUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the ScheduledNotificationMutation object of the builder.
func (_u *ScheduledNotificationUpdateOne) Mutation() *ScheduledNotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledNotificationUpdate builder.
func (_u *ScheduledNotificationUpdateOne) Where(ps ...predicate.ScheduledNotification) *ScheduledNotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledNotificationUpdateOne) Select(field string, fields ...string) *ScheduledNotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledNotification entity.
func (_u *ScheduledNotificationUpdateOne) Save(ctx context.Context) (*ScheduledNotification, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledNotificationUpdateOne) SaveX(ctx context.Context) *ScheduledNotification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledNotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledNotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledNotificationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedulednotification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledNotificationUpdateOne) check() error {
	if v, ok := _u.mutation.TargetType(); ok {
		if err := schedulednotification.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.target_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := schedulednotification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := schedulednotification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := schedulednotification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Link(); ok {
		if err := schedulednotification.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := schedulednotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledNotificationUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledNotification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulednotification.Table, schedulednotification.Columns, sqlgraph.NewFieldSpec(schedulednotification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ScheduledNotification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulednotification.FieldID)
		for _, f := range fields {
			if !schedulednotification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != schedulednotification.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulednotification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(schedulednotification.FieldCreatorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(schedulednotification.FieldOrganizationID, field.TypeUUID, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(schedulednotification.FieldOrganizationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(schedulednotification.FieldTargetType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetIds(); ok {
		_spec.SetField(schedulednotification.FieldTargetIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedulednotification.FieldTargetIds, value)
		})
	}
	if _u.mutation.TargetIdsCleared() {
		_spec.ClearField(schedulednotification.FieldTargetIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(schedulednotification.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(schedulednotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(schedulednotification.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(schedulednotification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(schedulednotification.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(schedulednotification.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(schedulednotification.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulednotification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(schedulednotification.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(schedulednotification.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(schedulednotification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(schedulednotification.FieldSentAt, field.TypeTime)
	}
	_node = &ScheduledNotification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulednotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
