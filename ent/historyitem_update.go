// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/karandv/lingua/ent/historyitem"
	"github.com/karandv/lingua/ent/predicate"
)

// HistoryItemUpdate is the builder for updating HistoryItem entities.
type HistoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryItemMutation
}

// Where appends a list predicates to the HistoryItemUpdate builder.
func (_u *HistoryItemUpdate) Where(ps ...predicate.HistoryItem) *HistoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *HistoryItemUpdate) SetItemID(v string) *HistoryItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *HistoryItemUpdate) SetNillableItemID(v *string) *HistoryItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *HistoryItemUpdate) SetTimestamp(v time.Time) *HistoryItemUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *HistoryItemUpdate) SetNillableTimestamp(v *time.Time) *HistoryItemUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *HistoryItemUpdate) SetTheme(v string) *HistoryItemUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *HistoryItemUpdate) SetNillableTheme(v *string) *HistoryItemUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *HistoryItemUpdate) SetLanguage(v string) *HistoryItemUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *HistoryItemUpdate) SetNillableLanguage(v *string) *HistoryItemUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *HistoryItemUpdate) SetDifficulty(v string) *HistoryItemUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *HistoryItemUpdate) SetNillableDifficulty(v *string) *HistoryItemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetContextDescription sets the "context_description" field.
func (_u *HistoryItemUpdate) SetContextDescription(v string) *HistoryItemUpdate {
	_u.mutation.SetContextDescription(v)
	return _u
}

// SetNillableContextDescription sets the "context_description" field if the given value is not nil.
func (_u *HistoryItemUpdate) SetNillableContextDescription(v *string) *HistoryItemUpdate {
	if v != nil {
		_u.SetContextDescription(*v)
	}
	return _u
}

// SetThumbnail sets the "thumbnail" field.
func (_u *HistoryItemUpdate) SetThumbnail(v string) *HistoryItemUpdate {
	_u.mutation.SetThumbnail(v)
	return _u
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_u *HistoryItemUpdate) SetNillableThumbnail(v *string) *HistoryItemUpdate {
	if v != nil {
		_u.SetThumbnail(*v)
	}
	return _u
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (_u *HistoryItemUpdate) ClearThumbnail() *HistoryItemUpdate {
	_u.mutation.ClearThumbnail()
	return _u
}

// SetContent sets the "content" field.
func (_u *HistoryItemUpdate) SetContent(v json.RawMessage) *HistoryItemUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *HistoryItemUpdate) AppendContent(v json.RawMessage) *HistoryItemUpdate {
	_u.mutation.AppendContent(v)
	return _u
}

// SetChat sets the "chat" field.
func (_u *HistoryItemUpdate) SetChat(v json.RawMessage) *HistoryItemUpdate {
	_u.mutation.SetChat(v)
	return _u
}

// AppendChat appends value to the "chat" field.
func (_u *HistoryItemUpdate) AppendChat(v json.RawMessage) *HistoryItemUpdate {
	_u.mutation.AppendChat(v)
	return _u
}

// ClearChat clears the value of the "chat" field.
func (_u *HistoryItemUpdate) ClearChat() *HistoryItemUpdate {
	_u.mutation.ClearChat()
	return _u
}

// Mutation returns the HistoryItemMutation object of the builder.
func (_u *HistoryItemUpdate) Mutation() *HistoryItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryItemUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := historyitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Theme(); ok {
		if err := historyitem.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.theme": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := historyitem.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.language": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyitem.Table, historyitem.Columns, sqlgraph.NewFieldSpec(historyitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(historyitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(historyitem.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(historyitem.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(historyitem.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(historyitem.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextDescription(); ok {
		_spec.SetField(historyitem.FieldContextDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Thumbnail(); ok {
		_spec.SetField(historyitem.FieldThumbnail, field.TypeString, value)
	}
	if _u.mutation.ThumbnailCleared() {
		_spec.ClearField(historyitem.FieldThumbnail, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(historyitem.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, historyitem.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.Chat(); ok {
		_spec.SetField(historyitem.FieldChat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChat(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, historyitem.FieldChat, value)
		})
	}
	if _u.mutation.ChatCleared() {
		_spec.ClearField(historyitem.FieldChat, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryItemUpdateOne is the builder for updating a single HistoryItem entity.
type HistoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *HistoryItemUpdateOne) SetItemID(v string) *HistoryItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *HistoryItemUpdateOne) SetNillableItemID(v *string) *HistoryItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *HistoryItemUpdateOne) SetTimestamp(v time.Time) *HistoryItemUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *HistoryItemUpdateOne) SetNillableTimestamp(v *time.Time) *HistoryItemUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *HistoryItemUpdateOne) SetTheme(v string) *HistoryItemUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *HistoryItemUpdateOne) SetNillableTheme(v *string) *HistoryItemUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *HistoryItemUpdateOne) SetLanguage(v string) *HistoryItemUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *HistoryItemUpdateOne) SetNillableLanguage(v *string) *HistoryItemUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *HistoryItemUpdateOne) SetDifficulty(v string) *HistoryItemUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *HistoryItemUpdateOne) SetNillableDifficulty(v *string) *HistoryItemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetContextDescription sets the "context_description" field.
func (_u *HistoryItemUpdateOne) SetContextDescription(v string) *HistoryItemUpdateOne {
	_u.mutation.SetContextDescription(v)
	return _u
}

// SetNillableContextDescription sets the "context_description" field if the given value is not nil.
func (_u *HistoryItemUpdateOne) SetNillableContextDescription(v *string) *HistoryItemUpdateOne {
	if v != nil {
		_u.SetContextDescription(*v)
	}
	return _u
}

// SetThumbnail sets the "thumbnail" field.
func (_u *HistoryItemUpdateOne) SetThumbnail(v string) *HistoryItemUpdateOne {
	_u.mutation.SetThumbnail(v)
	return _u
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_u *HistoryItemUpdateOne) SetNillableThumbnail(v *string) *HistoryItemUpdateOne {
	if v != nil {
		_u.SetThumbnail(*v)
	}
	return _u
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (_u *HistoryItemUpdateOne) ClearThumbnail() *HistoryItemUpdateOne {
	_u.mutation.ClearThumbnail()
	return _u
}

// SetContent sets the "content" field.
func (_u *HistoryItemUpdateOne) SetContent(v json.RawMessage) *HistoryItemUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *HistoryItemUpdateOne) AppendContent(v json.RawMessage) *HistoryItemUpdateOne {
	_u.mutation.AppendContent(v)
	return _u
}

// SetChat sets the "chat" field.
func (_u *HistoryItemUpdateOne) SetChat(v json.RawMessage) *HistoryItemUpdateOne {
	_u.mutation.SetChat(v)
	return _u
}

// AppendChat appends value to the "chat" field.
func (_u *HistoryItemUpdateOne) AppendChat(v json.RawMessage) *HistoryItemUpdateOne {
	_u.mutation.AppendChat(v)
	return _u
}

// ClearChat clears the value of the "chat" field.
func (_u *HistoryItemUpdateOne) ClearChat() *HistoryItemUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// Mutation returns the HistoryItemMutation object of the builder.
func (_u *HistoryItemUpdateOne) Mutation() *HistoryItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryItemUpdate builder.
func (_u *HistoryItemUpdateOne) Where(ps ...predicate.HistoryItem) *HistoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryItemUpdateOne) Select(field string, fields ...string) *HistoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HistoryItem entity.
func (_u *HistoryItemUpdateOne) Save(ctx context.Context) (*HistoryItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryItemUpdateOne) SaveX(ctx context.Context) *HistoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := historyitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Theme(); ok {
		if err := historyitem.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.theme": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := historyitem.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "HistoryItem.language": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryItemUpdateOne) sqlSave(ctx context.Context) (_node *HistoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyitem.Table, historyitem.Columns, sqlgraph.NewFieldSpec(historyitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HistoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, historyitem.FieldID)
		for _, f := range fields {
			if !historyitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != historyitem.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(historyitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(historyitem.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(historyitem.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(historyitem.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(historyitem.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextDescription(); ok {
		_spec.SetField(historyitem.FieldContextDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Thumbnail(); ok {
		_spec.SetField(historyitem.FieldThumbnail, field.TypeString, value)
	}
	if _u.mutation.ThumbnailCleared() {
		_spec.ClearField(historyitem.FieldThumbnail, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(historyitem.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, historyitem.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.Chat(); ok {
		_spec.SetField(historyitem.FieldChat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChat(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, historyitem.FieldChat, value)
		})
	}
	if _u.mutation.ChatCleared() {
		_spec.ClearField(historyitem.FieldChat, field.TypeJSON)
	}
	_node = &HistoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
