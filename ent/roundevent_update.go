// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/karandv/lingua/ent/predicate"
	"github.com/karandv/lingua/ent/roundevent"
)

// RoundEventUpdate is the builder for updating RoundEvent entities.
type RoundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoundEventMutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdate) Where(ps ...predicate.RoundEvent) *RoundEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdate) SetRoundID(v string) *RoundEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRoundID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *RoundEventUpdate) SetTurns(v int) *RoundEventUpdate {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTurns(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *RoundEventUpdate) AddTurns(v int) *RoundEventUpdate {
	_u.mutation.AddTurns(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdate) SetScore(v int) *RoundEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableScore(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdate) AddScore(v int) *RoundEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *RoundEventUpdate) SetOutcome(v string) *RoundEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableOutcome(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *RoundEventUpdate) SetXpAwarded(v int) *RoundEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableXpAwarded(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *RoundEventUpdate) AddXpAwarded(v int) *RoundEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdate) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdate) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(roundevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(roundevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(roundevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(roundevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(roundevent.FieldXpAwarded, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundEventUpdateOne is the builder for updating a single RoundEvent entity.
type RoundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundEventMutation
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdateOne) SetRoundID(v string) *RoundEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRoundID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *RoundEventUpdateOne) SetTurns(v int) *RoundEventUpdateOne {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTurns(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *RoundEventUpdateOne) AddTurns(v int) *RoundEventUpdateOne {
	_u.mutation.AddTurns(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdateOne) SetScore(v int) *RoundEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableScore(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdateOne) AddScore(v int) *RoundEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *RoundEventUpdateOne) SetOutcome(v string) *RoundEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableOutcome(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *RoundEventUpdateOne) SetXpAwarded(v int) *RoundEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableXpAwarded(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *RoundEventUpdateOne) AddXpAwarded(v int) *RoundEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdateOne) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdateOne) Where(ps ...predicate.RoundEvent) *RoundEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundEventUpdateOne) Select(field string, fields ...string) *RoundEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundEvent entity.
func (_u *RoundEventUpdateOne) Save(ctx context.Context) (*RoundEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdateOne) SaveX(ctx context.Context) *RoundEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdateOne) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdateOne) sqlSave(ctx context.Context) (_node *RoundEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundevent.FieldID)
		for _, f := range fields {
			if !roundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundevent.FieldID {
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
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(roundevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(roundevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(roundevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(roundevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(roundevent.FieldXpAwarded, field.TypeInt, value)
	}
	_node = &RoundEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
