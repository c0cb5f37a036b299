// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/karandv/lingua/ent/missionevent"
	"github.com/karandv/lingua/ent/predicate"
)

// MissionEventUpdate is the builder for updating MissionEvent entities.
type MissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *MissionEventMutation
}

// Where appends a list predicates to the MissionEventUpdate builder.
func (_u *MissionEventUpdate) Where(ps ...predicate.MissionEvent) *MissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *MissionEventUpdate) SetMissionID(v string) *MissionEventUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *MissionEventUpdate) SetNillableMissionID(v *string) *MissionEventUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *MissionEventUpdate) SetLabel(v string) *MissionEventUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *MissionEventUpdate) SetNillableLabel(v *string) *MissionEventUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MissionEventUpdate) SetCategory(v string) *MissionEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MissionEventUpdate) SetNillableCategory(v *string) *MissionEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *MissionEventUpdate) SetTarget(v int) *MissionEventUpdate {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *MissionEventUpdate) SetNillableTarget(v *int) *MissionEventUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *MissionEventUpdate) AddTarget(v int) *MissionEventUpdate {
	_u.mutation.AddTarget(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *MissionEventUpdate) SetXpAwarded(v int) *MissionEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *MissionEventUpdate) SetNillableXpAwarded(v *int) *MissionEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *MissionEventUpdate) AddXpAwarded(v int) *MissionEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the MissionEventMutation object of the builder.
func (_u *MissionEventUpdate) Mutation() *MissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionEventUpdate) check() error {
	if v, ok := _u.mutation.MissionID(); ok {
		if err := missionevent.MissionIDValidator(v); err != nil {
			return &ValidationError{Name: "mission_id", err: fmt.Errorf(`ent: validator failed for field "MissionEvent.mission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := missionevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "MissionEvent.label": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(missionevent.Table, missionevent.Columns, sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(missionevent.FieldMissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(missionevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(missionevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(missionevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(missionevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(missionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(missionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionEventUpdateOne is the builder for updating a single MissionEvent entity.
type MissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionEventMutation
}

// SetMissionID sets the "mission_id" field.
func (_u *MissionEventUpdateOne) SetMissionID(v string) *MissionEventUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *MissionEventUpdateOne) SetNillableMissionID(v *string) *MissionEventUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *MissionEventUpdateOne) SetLabel(v string) *MissionEventUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *MissionEventUpdateOne) SetNillableLabel(v *string) *MissionEventUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MissionEventUpdateOne) SetCategory(v string) *MissionEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MissionEventUpdateOne) SetNillableCategory(v *string) *MissionEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *MissionEventUpdateOne) SetTarget(v int) *MissionEventUpdateOne {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *MissionEventUpdateOne) SetNillableTarget(v *int) *MissionEventUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *MissionEventUpdateOne) AddTarget(v int) *MissionEventUpdateOne {
	_u.mutation.AddTarget(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *MissionEventUpdateOne) SetXpAwarded(v int) *MissionEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *MissionEventUpdateOne) SetNillableXpAwarded(v *int) *MissionEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *MissionEventUpdateOne) AddXpAwarded(v int) *MissionEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the MissionEventMutation object of the builder.
func (_u *MissionEventUpdateOne) Mutation() *MissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MissionEventUpdate builder.
func (_u *MissionEventUpdateOne) Where(ps ...predicate.MissionEvent) *MissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionEventUpdateOne) Select(field string, fields ...string) *MissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MissionEvent entity.
func (_u *MissionEventUpdateOne) Save(ctx context.Context) (*MissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionEventUpdateOne) SaveX(ctx context.Context) *MissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.MissionID(); ok {
		if err := missionevent.MissionIDValidator(v); err != nil {
			return &ValidationError{Name: "mission_id", err: fmt.Errorf(`ent: validator failed for field "MissionEvent.mission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := missionevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "MissionEvent.label": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionEventUpdateOne) sqlSave(ctx context.Context) (_node *MissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(missionevent.Table, missionevent.Columns, sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, missionevent.FieldID)
		for _, f := range fields {
			if !missionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != missionevent.FieldID {
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
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(missionevent.FieldMissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(missionevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(missionevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(missionevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(missionevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(missionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(missionevent.FieldXpAwarded, field.TypeInt, value)
	}
	_node = &MissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
