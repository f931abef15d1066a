// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notificationsendlog"
)

// NotificationSendLogCreate is the builder for creating a NotificationSendLog entity.
type NotificationSendLogCreate struct {
	config
	mutation *NotificationSendLogMutation
	hooks    []Hook
}

// SetCreatorID sets the "creator_id" field.
func (_c *NotificationSendLogCreate) SetCreatorID(v uuid.UUID) *NotificationSendLogCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *NotificationSendLogCreate) SetOrganizationID(v uuid.UUID) *NotificationSendLogCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_c *NotificationSendLogCreate) SetNillableOrganizationID(v *uuid.UUID) *NotificationSendLogCreate {
	if v != nil {
		_c.SetOrganizationID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *NotificationSendLogCreate) SetTitle(v string) *NotificationSendLogCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *NotificationSendLogCreate) SetMessage(v string) *NotificationSendLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetType sets the "type" field.
func (_c *NotificationSendLogCreate) SetType(v notificationsendlog.Type) *NotificationSendLogCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *NotificationSendLogCreate) SetPriority(v notificationsendlog.Priority) *NotificationSendLogCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *NotificationSendLogCreate) SetNillablePriority(v *notificationsendlog.Priority) *NotificationSendLogCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetLink sets the "link" field.
func (_c *NotificationSendLogCreate) SetLink(v string) *NotificationSendLogCreate {
	_c.mutation.SetLink(v)
	return _c
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_c *NotificationSendLogCreate) SetNillableLink(v *string) *NotificationSendLogCreate {
	if v != nil {
		_c.SetLink(*v)
	}
	return _c
}

// SetTargetType sets the "target_type" field.
func (_c *NotificationSendLogCreate) SetTargetType(v notificationsendlog.TargetType) *NotificationSendLogCreate {
	_c.mutation.SetTargetType(v)
	return _c
}

// SetTargetCount sets the "target_count" field.
func (_c *NotificationSendLogCreate) SetTargetCount(v int) *NotificationSendLogCreate {
	_c.mutation.SetTargetCount(v)
	return _c
}

// SetSentCount sets the "sent_count" field.
func (_c *NotificationSendLogCreate) SetSentCount(v int) *NotificationSendLogCreate {
	_c.mutation.SetSentCount(v)
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *NotificationSendLogCreate) SetFailedCount(v int) *NotificationSendLogCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *NotificationSendLogCreate) SetNillableFailedCount(v *int) *NotificationSendLogCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *NotificationSendLogCreate) SetSentAt(v time.Time) *NotificationSendLogCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationSendLogCreate) SetID(v uuid.UUID) *NotificationSendLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NotificationSendLogCreate) SetNillableID(v *uuid.UUID) *NotificationSendLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NotificationSendLogMutation object of the builder.
func (_c *NotificationSendLogCreate) Mutation() *NotificationSendLogMutation {
	return _c.mutation
}

// Save creates the NotificationSendLog in the database.
func (_c *NotificationSendLogCreate) Save(ctx context.Context) (*NotificationSendLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationSendLogCreate) SaveX(ctx context.Context) *NotificationSendLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationSendLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationSendLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationSendLogCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := notificationsendlog.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := notificationsendlog.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := notificationsendlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationSendLogCreate) check() error {
	if _, ok := _c.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator_id", err: errors.New(`repo: missing required field "NotificationSendLog.creator_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "NotificationSendLog.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := notificationsendlog.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`repo: missing required field "NotificationSendLog.message"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "NotificationSendLog.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := notificationsendlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "NotificationSendLog.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := notificationsendlog.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.priority": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Link(); ok {
		if err := notificationsendlog.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.link": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetType(); !ok {
		return &ValidationError{Name: "target_type", err: errors.New(`repo: missing required field "NotificationSendLog.target_type"`)}
	}
	if v, ok := _c.mutation.TargetType(); ok {
		if err := notificationsendlog.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`repo: validator failed for field "NotificationSendLog.target_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetCount(); !ok {
		return &ValidationError{Name: "target_count", err: errors.New(`repo: missing required field "NotificationSendLog.target_count"`)}
	}
	if _, ok := _c.mutation.SentCount(); !ok {
		return &ValidationError{Name: "sent_count", err: errors.New(`repo: missing required field "NotificationSendLog.sent_count"`)}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`repo: missing required field "NotificationSendLog.failed_count"`)}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`repo: missing required field "NotificationSendLog.sent_at"`)}
	}
	return nil
}

func (_c *NotificationSendLogCreate) sqlSave(ctx context.Context) (*NotificationSendLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationSendLogCreate) createSpec() (*NotificationSendLog, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationSendLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationsendlog.Table, sqlgraph.NewFieldSpec(notificationsendlog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatorID(); ok {
		_spec.SetField(notificationsendlog.FieldCreatorID, field.TypeUUID, value)
		_node.CreatorID = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(notificationsendlog.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(notificationsendlog.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(notificationsendlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(notificationsendlog.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(notificationsendlog.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Link(); ok {
		_spec.SetField(notificationsendlog.FieldLink, field.TypeString, value)
		_node.Link = &value
	}
	if value, ok := _c.mutation.TargetType(); ok {
		_spec.SetField(notificationsendlog.FieldTargetType, field.TypeEnum, value)
		_node.TargetType = value
	}
	if value, ok := _c.mutation.TargetCount(); ok {
		_spec.SetField(notificationsendlog.FieldTargetCount, field.TypeInt, value)
		_node.TargetCount = value
	}
	if value, ok := _c.mutation.SentCount(); ok {
		_spec.SetField(notificationsendlog.FieldSentCount, field.TypeInt, value)
		_node.SentCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(notificationsendlog.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(notificationsendlog.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	return _node, _spec
}

// NotificationSendLogCreateBulk is the builder for creating many NotificationSendLog entities in bulk.
type NotificationSendLogCreateBulk struct {
	config
	err      error
	builders []*NotificationSendLogCreate
}

// Save creates the NotificationSendLog entities in the database.
func (_c *NotificationSendLogCreateBulk) Save(ctx context.Context) ([]*NotificationSendLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationSendLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationSendLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NotificationSendLogCreateBulk) SaveX(ctx context.Context) []*NotificationSendLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationSendLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationSendLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
