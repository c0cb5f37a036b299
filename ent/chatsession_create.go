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
	"github.com/karandv/lingua/ent/chatsession"
)

// ChatSessionCreate is the builder for creating a ChatSession entity.
type ChatSessionCreate struct {
	config
	mutation *ChatSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ChatSessionCreate) SetSessionID(v string) *ChatSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChatSessionCreate) SetTimestamp(v time.Time) *ChatSessionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableTimestamp(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTheme sets the "theme" field.
func (_c *ChatSessionCreate) SetTheme(v string) *ChatSessionCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ChatSessionCreate) SetLanguage(v string) *ChatSessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetUserRole sets the "user_role" field.
func (_c *ChatSessionCreate) SetUserRole(v string) *ChatSessionCreate {
	_c.mutation.SetUserRole(v)
	return _c
}

// SetPartnerRole sets the "partner_role" field.
func (_c *ChatSessionCreate) SetPartnerRole(v string) *ChatSessionCreate {
	_c.mutation.SetPartnerRole(v)
	return _c
}

// SetContextDescription sets the "context_description" field.
func (_c *ChatSessionCreate) SetContextDescription(v string) *ChatSessionCreate {
	_c.mutation.SetContextDescription(v)
	return _c
}

// SetNillableContextDescription sets the "context_description" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableContextDescription(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetContextDescription(*v)
	}
	return _c
}

// SetMessages sets the "messages" field.
func (_c *ChatSessionCreate) SetMessages(v json.RawMessage) *ChatSessionCreate {
	_c.mutation.SetMessages(v)
	return _c
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_c *ChatSessionCreate) Mutation() *ChatSessionMutation {
	return _c.mutation
}

// Save creates the ChatSession in the database.
func (_c *ChatSessionCreate) Save(ctx context.Context) (*ChatSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSessionCreate) SaveX(ctx context.Context) *ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSessionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := chatsession.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ContextDescription(); !ok {
		v := chatsession.DefaultContextDescription
		_c.mutation.SetContextDescription(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChatSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := chatsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChatSession.timestamp"`)}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "ChatSession.theme"`)}
	}
	if v, ok := _c.mutation.Theme(); ok {
		if err := chatsession.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "ChatSession.theme": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ChatSession.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := chatsession.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ChatSession.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserRole(); !ok {
		return &ValidationError{Name: "user_role", err: errors.New(`ent: missing required field "ChatSession.user_role"`)}
	}
	if v, ok := _c.mutation.UserRole(); ok {
		if err := chatsession.UserRoleValidator(v); err != nil {
			return &ValidationError{Name: "user_role", err: fmt.Errorf(`ent: validator failed for field "ChatSession.user_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PartnerRole(); !ok {
		return &ValidationError{Name: "partner_role", err: errors.New(`ent: missing required field "ChatSession.partner_role"`)}
	}
	if v, ok := _c.mutation.PartnerRole(); ok {
		if err := chatsession.PartnerRoleValidator(v); err != nil {
			return &ValidationError{Name: "partner_role", err: fmt.Errorf(`ent: validator failed for field "ChatSession.partner_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextDescription(); !ok {
		return &ValidationError{Name: "context_description", err: errors.New(`ent: missing required field "ChatSession.context_description"`)}
	}
	if _, ok := _c.mutation.Messages(); !ok {
		return &ValidationError{Name: "messages", err: errors.New(`ent: missing required field "ChatSession.messages"`)}
	}
	return nil
}

func (_c *ChatSessionCreate) sqlSave(ctx context.Context) (*ChatSession, error) {
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

func (_c *ChatSessionCreate) createSpec() (*ChatSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsession.Table, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(chatsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(chatsession.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(chatsession.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(chatsession.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.UserRole(); ok {
		_spec.SetField(chatsession.FieldUserRole, field.TypeString, value)
		_node.UserRole = value
	}
	if value, ok := _c.mutation.PartnerRole(); ok {
		_spec.SetField(chatsession.FieldPartnerRole, field.TypeString, value)
		_node.PartnerRole = value
	}
	if value, ok := _c.mutation.ContextDescription(); ok {
		_spec.SetField(chatsession.FieldContextDescription, field.TypeString, value)
		_node.ContextDescription = value
	}
	if value, ok := _c.mutation.Messages(); ok {
		_spec.SetField(chatsession.FieldMessages, field.TypeJSON, value)
		_node.Messages = value
	}
	return _node, _spec
}

// ChatSessionCreateBulk is the builder for creating many ChatSession entities in bulk.
type ChatSessionCreateBulk struct {
	config
	err      error
	builders []*ChatSessionCreate
}

// Save creates the ChatSession entities in the database.
func (_c *ChatSessionCreateBulk) Save(ctx context.Context) ([]*ChatSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSessionMutation)
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
func (_c *ChatSessionCreateBulk) SaveX(ctx context.Context) []*ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
