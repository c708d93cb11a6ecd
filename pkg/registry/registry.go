// Package registry tracks a set of named, independently-owned verified
// beaps and lets callers check all of them concurrently.
//
// A single beap is never safe for concurrent access (see pkg/beap and
// pkg/verified); that stays true here. Registry only ever runs one
// goroutine per registered instance, so two instances' invariant checks
// may run in parallel with each other but never two checks against the
// same instance.
package registry

import (
	"cmp"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/barnowlsnest/go-beap/pkg/verified"
)

// entry pairs a registered beap with the name it was registered under,
// so VerifyAll's errors can name the instance that failed.
type entry[T cmp.Ordered] struct {
	name string
	beap *verified.Verified[T]
}

// Registry holds named Verified beaps under generated UUID identities,
// the way pkg/dag's ID = uuid.UUID alias identifies graph nodes.
type Registry[T cmp.Ordered] struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]*entry[T]
	byName map[string]uuid.UUID
}

// New creates an empty Registry.
func New[T cmp.Ordered]() *Registry[T] {
	return &Registry[T]{
		byID:   make(map[uuid.UUID]*entry[T]),
		byName: make(map[string]uuid.UUID),
	}
}

// Register assigns b a fresh UUID and records it under name, replacing
// any instance previously registered under that name.
func (r *Registry[T]) Register(name string, b *verified.Verified[T]) uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[name]; ok {
		delete(r.byID, old)
	}
	r.byID[id] = &entry[T]{name: name, beap: b}
	r.byName[name] = id

	return id
}

// Unregister removes the instance registered under id, if any.
func (r *Registry[T]) Unregister(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return
	}
	delete(r.byID, id)
	if r.byName[e.name] == id {
		delete(r.byName, e.name)
	}
}

// Lookup returns the instance registered under id.
func (r *Registry[T]) Lookup(id uuid.UUID) (*verified.Verified[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.beap, nil
}

// LookupByName returns the instance most recently registered under name.
func (r *Registry[T]) LookupByName(name string) (*verified.Verified[T], error) {
	r.mu.Lock()
	id, ok := r.byName[name]
	r.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	return r.Lookup(id)
}

// Len returns the number of currently registered instances.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// VerifyAll runs CheckInvariants across every registered instance
// concurrently, fanning out one goroutine per instance with
// errgroup.Group the way pkg/tree.Node.SelectOneChildByEachValue fans
// child lookups out across goroutines. It returns the first failure,
// wrapped with the failing instance's registered name; a passing call
// means every registered beap's invariants held at the moment it was
// checked. ctx is only consulted before the fan-out starts — once
// underway, every check runs to completion.
func (r *Registry[T]) VerifyAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	entries := make([]*entry[T], 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	r.mu.Unlock()

	var eg errgroup.Group
	for _, e := range entries {
		e := e
		eg.Go(func() (checkErr error) {
			defer func() {
				if p := recover(); p != nil {
					checkErr = fmt.Errorf("registry: %s: %v", e.name, p)
				}
			}()
			e.beap.CheckInvariants()
			return nil
		})
	}

	return eg.Wait()
}
