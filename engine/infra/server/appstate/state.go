// Package appstate carries the per-process entity stores through gin request
// contexts so handlers never touch global mutable state.
package appstate

import (
	"context"
	"fmt"

	"github.com/campusdir/campusdir/engine/address"
	"github.com/campusdir/campusdir/engine/house"
	"github.com/campusdir/campusdir/engine/organization"
	"github.com/campusdir/campusdir/engine/person"
	"github.com/campusdir/campusdir/engine/registry"
	"github.com/gin-gonic/gin"
)

type contextKey string

const stateKey contextKey = "app_state"

// State owns the four entity stores. One instance exists per server process;
// everything in it dies with the process.
type State struct {
	Addresses     *registry.Store[address.Record, *address.Record]
	Persons       *registry.Store[person.Record, *person.Record]
	Organizations *registry.Store[organization.Record, *organization.Record]
	Houses        *registry.Store[house.Record, *house.Record]
}

// NewState constructs empty stores for every entity kind.
func NewState() *State {
	return &State{
		Addresses:     registry.New[address.Record, *address.Record](),
		Persons:       registry.New[person.Record, *person.Record](),
		Organizations: registry.New[organization.Record, *organization.Record](),
		Houses:        registry.New[house.Record, *house.Record](),
	}
}

// WithState stores the app state in the context.
func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateKey, state)
}

// GetState retrieves the app state from the context.
func GetState(ctx context.Context) (*State, error) {
	state, ok := ctx.Value(stateKey).(*State)
	if !ok {
		return nil, fmt.Errorf("app state not found in context")
	}
	return state, nil
}

// StateMiddleware attaches the state to every request context.
func StateMiddleware(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithState(c.Request.Context(), state))
		c.Next()
	}
}
