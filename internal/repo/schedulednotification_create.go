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
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/schedulednotification"
)

// ScheduledNotificationCreate is the builder for creating a ScheduledNotification entity.
type ScheduledNotificationCreate struct {
	config
	mutation *ScheduledNotificationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledNotificationCreate) SetCreatedAt(v time.Time) *ScheduledNotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableCreatedAt(v *time.Time) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledNotificationCreate) SetUpdatedAt(v time.Time) *ScheduledNotificationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatorID sets the "creator_id" field.
func (_c *ScheduledNotificationCreate) SetCreatorID(v uuid.UUID) *ScheduledNotificationCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *ScheduledNotificationCreate) SetOrganizationID(v uuid.UUID) *ScheduledNotificationCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableOrganizationID(v *uuid.UUID) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetOrganizationID(*v)
	}
	return _c
}

// SetTargetType sets the "target_type" field.
func (_c *ScheduledNotificationCreate) SetTargetType(v schedulednotification.TargetType) *ScheduledNotificationCreate {
	_c.mutation.SetTargetType(v)
	return _c
}

// SetTargetIds sets the "target_ids" field.
func (_c *ScheduledNotificationCreate) SetTargetIds(v []string) *ScheduledNotificationCreate {
	_c.mutation.SetTargetIds(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ScheduledNotificationCreate) SetTitle(v string) *ScheduledNotificationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ScheduledNotificationCreate) SetMessage(v string) *ScheduledNotificationCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ScheduledNotificationCreate) SetType(v schedulednotification.Type) *ScheduledNotificationCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ScheduledNotificationCreate) SetPriority(v schedulednotification.Priority) *ScheduledNotificationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillablePriority(v *schedulednotification.Priority) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetLink sets the "link" field.
func (_c *ScheduledNotificationCreate) SetLink(v string) *ScheduledNotificationCreate {
	_c.mutation.SetLink(v)
	return _c
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableLink(v *string) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetLink(*v)
	}
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *ScheduledNotificationCreate) SetScheduledFor(v time.Time) *ScheduledNotificationCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledNotificationCreate) SetStatus(v schedulednotification.Status) *ScheduledNotificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableStatus(v *schedulednotification.Status) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *ScheduledNotificationCreate) SetFailureReason(v string) *ScheduledNotificationCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableFailureReason(v *string) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ScheduledNotificationCreate) SetSentAt(v time.Time) *ScheduledNotificationCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableSentAt(v *time.Time) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledNotificationCreate) SetID(v uuid.UUID) *ScheduledNotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScheduledNotificationCreate) SetNillableID(v *uuid.UUID) *ScheduledNotificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ScheduledNotificationMutation object of the builder.
func (_c *ScheduledNotificationCreate) Mutation() *ScheduledNotificationMutation {
	return _c.mutation
}

// Save creates the ScheduledNotification in the database.
func (_c *ScheduledNotificationCreate) Save(ctx context.Context) (*ScheduledNotification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledNotificationCreate) SaveX(ctx context.Context) *ScheduledNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledNotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledNotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledNotificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schedulednotification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := schedulednotification.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := schedulednotification.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := schedulednotification.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := schedulednotification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledNotificationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ScheduledNotification.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ScheduledNotification.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator_id", err: errors.New(`repo: missing required field "ScheduledNotification.creator_id"`)}
	}
	if _, ok := _c.mutation.TargetType(); !ok {
		return &ValidationError{Name: "target_type", err: errors.New(`repo: missing required field "ScheduledNotification.target_type"`)}
	}
	if v, ok := _c.mutation.TargetType(); ok {
		if err := schedulednotification.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.target_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "ScheduledNotification.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := schedulednotification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`repo: missing required field "ScheduledNotification.message"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "ScheduledNotification.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := schedulednotification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "ScheduledNotification.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := schedulednotification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.priority": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Link(); ok {
		if err := schedulednotification.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.link": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`repo: missing required field "ScheduledNotification.scheduled_for"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "ScheduledNotification.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := schedulednotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ScheduledNotification.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ScheduledNotificationCreate) sqlSave(ctx context.Context) (*ScheduledNotification, error) {
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

func (_c *ScheduledNotificationCreate) createSpec() (*ScheduledNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledNotification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulednotification.Table, sqlgraph.NewFieldSpec(schedulednotification.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schedulednotification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulednotification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatorID(); ok {
		_spec.SetField(schedulednotification.FieldCreatorID, field.TypeUUID, value)
		_node.CreatorID = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(schedulednotification.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = &value
	}
	if value, ok := _c.mutation.TargetType(); ok {
		_spec.SetField(schedulednotification.FieldTargetType, field.TypeEnum, value)
		_node.TargetType = value
	}
	if value, ok := _c.mutation.TargetIds(); ok {
		_spec.SetField(schedulednotification.FieldTargetIds, field.TypeJSON, value)
		_node.TargetIds = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(schedulednotification.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(schedulednotification.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(schedulednotification.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(schedulednotification.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Link(); ok {
		_spec.SetField(schedulednotification.FieldLink, field.TypeString, value)
		_node.Link = &value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(schedulednotification.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(schedulednotification.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(schedulednotification.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(schedulednotification.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	return _node, _spec
}

// ScheduledNotificationCreateBulk is the builder for creating many ScheduledNotification entities in bulk.
type ScheduledNotificationCreateBulk struct {
	config
	err      error
	builders []*ScheduledNotificationCreate
}

// Save creates the ScheduledNotification entities in the database.
func (_c *ScheduledNotificationCreateBulk) Save(ctx context.Context) ([]*ScheduledNotification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledNotification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledNotificationMutation)
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
func (_c *ScheduledNotificationCreateBulk) SaveX(ctx context.Context) []*ScheduledNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
