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
	"github.com/karandv/lingua/ent/chatsession"
	"github.com/karandv/lingua/ent/predicate"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatSessionUpdate) SetSessionID(v string) *ChatSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableSessionID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ChatSessionUpdate) SetTimestamp(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTimestamp(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *ChatSessionUpdate) SetTheme(v string) *ChatSessionUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTheme(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ChatSessionUpdate) SetLanguage(v string) *ChatSessionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableLanguage(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetUserRole sets the "user_role" field.
func (_u *ChatSessionUpdate) SetUserRole(v string) *ChatSessionUpdate {
	_u.mutation.SetUserRole(v)
	return _u
}

// SetNillableUserRole sets the "user_role" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableUserRole(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetUserRole(*v)
	}
	return _u
}

// SetPartnerRole sets the "partner_role" field.
func (_u *ChatSessionUpdate) SetPartnerRole(v string) *ChatSessionUpdate {
	_u.mutation.SetPartnerRole(v)
	return _u
}

// SetNillablePartnerRole sets the "partner_role" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillablePartnerRole(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetPartnerRole(*v)
	}
	return _u
}

// SetContextDescription sets the "context_description" field.
func (_u *ChatSessionUpdate) SetContextDescription(v string) *ChatSessionUpdate {
	_u.mutation.SetContextDescription(v)
	return _u
}

// SetNillableContextDescription sets the "context_description" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableContextDescription(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetContextDescription(*v)
	}
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ChatSessionUpdate) SetMessages(v json.RawMessage) *ChatSessionUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ChatSessionUpdate) AppendMessages(v json.RawMessage) *ChatSessionUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Theme(); ok {
		if err := chatsession.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "ChatSession.theme": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := chatsession.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ChatSession.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserRole(); ok {
		if err := chatsession.UserRoleValidator(v); err != nil {
			return &ValidationError{Name: "user_role", err: fmt.Errorf(`ent: validator failed for field "ChatSession.user_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartnerRole(); ok {
		if err := chatsession.PartnerRoleValidator(v); err != nil {
			return &ValidationError{Name: "partner_role", err: fmt.Errorf(`ent: validator failed for field "ChatSession.partner_role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(chatsession.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(chatsession.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(chatsession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserRole(); ok {
		_spec.SetField(chatsession.FieldUserRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartnerRole(); ok {
		_spec.SetField(chatsession.FieldPartnerRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextDescription(); ok {
		_spec.SetField(chatsession.FieldContextDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(chatsession.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldMessages, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatSessionUpdateOne) SetSessionID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableSessionID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ChatSessionUpdateOne) SetTimestamp(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTimestamp(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *ChatSessionUpdateOne) SetTheme(v string) *ChatSessionUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTheme(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ChatSessionUpdateOne) SetLanguage(v string) *ChatSessionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableLanguage(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetUserRole sets the "user_role" field.
func (_u *ChatSessionUpdateOne) SetUserRole(v string) *ChatSessionUpdateOne {
	_u.mutation.SetUserRole(v)
	return _u
}

// SetNillableUserRole sets the "user_role" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableUserRole(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetUserRole(*v)
	}
	return _u
}

// SetPartnerRole sets the "partner_role" field.
func (_u *ChatSessionUpdateOne) SetPartnerRole(v string) *ChatSessionUpdateOne {
	_u.mutation.SetPartnerRole(v)
	return _u
}

// SetNillablePartnerRole sets the "partner_role" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillablePartnerRole(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetPartnerRole(*v)
	}
	return _u
}

// SetContextDescription sets the "context_description" field.
func (_u *ChatSessionUpdateOne) SetContextDescription(v string) *ChatSessionUpdateOne {
	_u.mutation.SetContextDescription(v)
	return _u
}

// SetNillableContextDescription sets the "context_description" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableContextDescription(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetContextDescription(*v)
	}
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ChatSessionUpdateOne) SetMessages(v json.RawMessage) *ChatSessionUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ChatSessionUpdateOne) AppendMessages(v json.RawMessage) *ChatSessionUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Theme(); ok {
		if err := chatsession.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "ChatSession.theme": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := chatsession.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ChatSession.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserRole(); ok {
		if err := chatsession.UserRoleValidator(v); err != nil {
			return &ValidationError{Name: "user_role", err: fmt.Errorf(`ent: validator failed for field "ChatSession.user_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartnerRole(); ok {
		if err := chatsession.PartnerRoleValidator(v); err != nil {
			return &ValidationError{Name: "partner_role", err: fmt.Errorf(`ent: validator failed for field "ChatSession.partner_role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(chatsession.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(chatsession.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(chatsession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserRole(); ok {
		_spec.SetField(chatsession.FieldUserRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartnerRole(); ok {
		_spec.SetField(chatsession.FieldPartnerRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextDescription(); ok {
		_spec.SetField(chatsession.FieldContextDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(chatsession.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldMessages, value)
		})
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
