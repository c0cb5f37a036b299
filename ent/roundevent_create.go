// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/karandv/lingua/ent/roundevent"
)

// RoundEventCreate is the builder for creating a RoundEvent entity.
type RoundEventCreate struct {
	config
	mutation *RoundEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RoundEventCreate) SetSequence(v int64) *RoundEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoundEventCreate) SetTimestamp(v time.Time) *RoundEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTimestamp(v *time.Time) *RoundEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *RoundEventCreate) SetRoundID(v string) *RoundEventCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetTurns sets the "turns" field.
func (_c *RoundEventCreate) SetTurns(v int) *RoundEventCreate {
	_c.mutation.SetTurns(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RoundEventCreate) SetScore(v int) *RoundEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *RoundEventCreate) SetOutcome(v string) *RoundEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *RoundEventCreate) SetXpAwarded(v int) *RoundEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableXpAwarded(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetXpAwarded(*v)
	}
	return _c
}

// Mutation returns the RoundEventMutation object of the builder.
func (_c *RoundEventCreate) Mutation() *RoundEventMutation {
	return _c.mutation
}

// Save creates the RoundEvent in the database.
func (_c *RoundEventCreate) Save(ctx context.Context) (*RoundEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundEventCreate) SaveX(ctx context.Context) *RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := roundevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		v := roundevent.DefaultXpAwarded
		_c.mutation.SetXpAwarded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoundEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoundEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "RoundEvent.round_id"`)}
	}
	if v, ok := _c.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Turns(); !ok {
		return &ValidationError{Name: "turns", err: errors.New(`ent: missing required field "RoundEvent.turns"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RoundEvent.score"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "RoundEvent.outcome"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "RoundEvent.xp_awarded"`)}
	}
	return nil
}

func (_c *RoundEventCreate) sqlSave(ctx context.Context) (*RoundEvent, error) {
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

func (_c *RoundEventCreate) createSpec() (*RoundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundevent.Table, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(roundevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(roundevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.Turns(); ok {
		_spec.SetField(roundevent.FieldTurns, field.TypeInt, value)
		_node.Turns = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(roundevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(roundevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	return _node, _spec
}

// RoundEventCreateBulk is the builder for creating many RoundEvent entities in bulk.
type RoundEventCreateBulk struct {
	config
	err      error
	builders []*RoundEventCreate
}

// Save creates the RoundEvent entities in the database.
func (_c *RoundEventCreateBulk) Save(ctx context.Context) ([]*RoundEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundEventMutation)
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
func (_c *RoundEventCreateBulk) SaveX(ctx context.Context) []*RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
