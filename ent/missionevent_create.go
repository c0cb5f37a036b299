// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/karandv/lingua/ent/missionevent"
)

// MissionEventCreate is the builder for creating a MissionEvent entity.
type MissionEventCreate struct {
	config
	mutation *MissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MissionEventCreate) SetSequence(v int64) *MissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MissionEventCreate) SetTimestamp(v time.Time) *MissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MissionEventCreate) SetNillableTimestamp(v *time.Time) *MissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *MissionEventCreate) SetMissionID(v string) *MissionEventCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *MissionEventCreate) SetLabel(v string) *MissionEventCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *MissionEventCreate) SetCategory(v string) *MissionEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *MissionEventCreate) SetTarget(v int) *MissionEventCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *MissionEventCreate) SetXpAwarded(v int) *MissionEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_c *MissionEventCreate) SetNillableXpAwarded(v *int) *MissionEventCreate {
	if v != nil {
		_c.SetXpAwarded(*v)
	}
	return _c
}

// Mutation returns the MissionEventMutation object of the builder.
func (_c *MissionEventCreate) Mutation() *MissionEventMutation {
	return _c.mutation
}

// Save creates the MissionEvent in the database.
func (_c *MissionEventCreate) Save(ctx context.Context) (*MissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionEventCreate) SaveX(ctx context.Context) *MissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := missionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		v := missionevent.DefaultXpAwarded
		_c.mutation.SetXpAwarded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "MissionEvent.mission_id"`)}
	}
	if v, ok := _c.mutation.MissionID(); ok {
		if err := missionevent.MissionIDValidator(v); err != nil {
			return &ValidationError{Name: "mission_id", err: fmt.Errorf(`ent: validator failed for field "MissionEvent.mission_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "MissionEvent.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := missionevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "MissionEvent.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "MissionEvent.category"`)}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "MissionEvent.target"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "MissionEvent.xp_awarded"`)}
	}
	return nil
}

func (_c *MissionEventCreate) sqlSave(ctx context.Context) (*MissionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionEventCreate) createSpec() (*MissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(missionevent.Table, sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(missionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(missionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(missionevent.FieldMissionID, field.TypeString, value)
		_node.MissionID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(missionevent.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(missionevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(missionevent.FieldTarget, field.TypeInt, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(missionevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	return _node, _spec
}

// MissionEventCreateBulk is the builder for creating many MissionEvent entities in bulk.
type MissionEventCreateBulk struct {
	config
	err      error
	builders []*MissionEventCreate
}

// Save creates the MissionEvent entities in the database.
func (_c *MissionEventCreateBulk) Save(ctx context.Context) ([]*MissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MissionEventCreateBulk) SaveX(ctx context.Context) []*MissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
