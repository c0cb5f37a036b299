// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/karandv/lingua/ent/historyitem"
)

// HistoryItemCreate is the builder for creating a HistoryItem entity.
type HistoryItemCreate struct {
	config
	mutation *HistoryItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *HistoryItemCreate) SetItemID(v string) *HistoryItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *HistoryItemCreate) SetTimestamp(v time.Time) *HistoryItemCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HistoryItemCreate) SetNillableTimestamp(v *time.Time) *HistoryItemCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTheme sets the "theme" field.
func (_c *HistoryItemCreate) SetTheme(v string) *HistoryItemCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *HistoryItemCreate) SetLanguage(v string) *HistoryItemCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *HistoryItemCreate) SetDifficulty(v string) *HistoryItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *HistoryItemCreate) SetNillableDifficulty(v *string) *HistoryItemCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetContextDescription sets the "context_description" field.
func (_c *HistoryItemCreate) SetContextDescription(v string) *HistoryItemCreate {
	_c.mutation.SetContextDescription(v)
	return _c
}

// SetNillableContextDescription sets the "context_description" field if the given value is not nil.
func (_c *HistoryItemCreate) SetNillableContextDescription(v *string) *HistoryItemCreate {
	if v != nil {
		_c.SetContextDescription(*v)
	}
	return _c
}

// SetThumbnail sets the "thumbnail" field.
func (_c *HistoryItemCreate) SetThumbnail(v string) *HistoryItemCreate {
	_c.mutation.SetThumbnail(v)
	return _c
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_c *HistoryItemCreate) SetNillableThumbnail(v *string) *HistoryItemCreate {
	if v != nil {
		_c.SetThumbnail(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *HistoryItemCreate) SetContent(v json.RawMessage) *HistoryItemCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetChat sets the "chat" field.
func (_c *HistoryItemCreate) SetChat(v json.RawMessage) *HistoryItemCreate {
	_c.mutation.SetChat(v)
	return _c
}

// Mutation returns the HistoryItemMutation object of the builder.
func (_c *HistoryItemCreate) Mutation() *HistoryItemMutation {
	return _c.mutation
}

// Save creates the HistoryItem in the database.
func (_c *HistoryItemCreate) Save(ctx context.Context) (*HistoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryItemCreate) SaveX(ctx context.Context) *HistoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryItemCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := historyitem.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := historyitem.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.ContextDescription(); !ok {
		v := historyitem.DefaultContextDescription
		_c.mutation.SetContextDescription(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "HistoryItem.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := historyitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HistoryItem.timestamp"`)}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "HistoryItem.theme"`)}
	}
	if v, ok := _c.mutation.Theme(); ok {
		if err := historyitem.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.theme": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "HistoryItem.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := historyitem.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "HistoryItem.difficulty"`)}
	}
	if _, ok := _c.mutation.ContextDescription(); !ok {
		return &ValidationError{Name: "context_description", err: errors.New(`ent: missing required field "HistoryItem.context_description"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "HistoryItem.content"`)}
	}
	return nil
}

func (_c *HistoryItemCreate) sqlSave(ctx context.Context) (*HistoryItem, error) {
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

func (_c *HistoryItemCreate) createSpec() (*HistoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &HistoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(historyitem.Table, sqlgraph.NewFieldSpec(historyitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(historyitem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(historyitem.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(historyitem.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(historyitem.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(historyitem.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ContextDescription(); ok {
		_spec.SetField(historyitem.FieldContextDescription, field.TypeString, value)
		_node.ContextDescription = value
	}
	if value, ok := _c.mutation.Thumbnail(); ok {
		_spec.SetField(historyitem.FieldThumbnail, field.TypeString, value)
		_node.Thumbnail = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(historyitem.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Chat(); ok {
		_spec.SetField(historyitem.FieldChat, field.TypeJSON, value)
		_node.Chat = value
	}
	return _node, _spec
}

// HistoryItemCreateBulk is the builder for creating many HistoryItem entities in bulk.
type HistoryItemCreateBulk struct {
	config
	err      error
	builders []*HistoryItemCreate
}

// Save creates the HistoryItem entities in the database.
func (_c *HistoryItemCreateBulk) Save(ctx context.Context) ([]*HistoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HistoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryItemMutation)
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
func (_c *HistoryItemCreateBulk) SaveX(ctx context.Context) []*HistoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
