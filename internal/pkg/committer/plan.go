// Package committer collects Spanner mutations into a plan and applies
// them atomically. A save of a country record writes the record row and
// its revision journal row in one commit; either both land or neither
// does.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// Plan accumulates mutations from multiple sources for a single commit.
type Plan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty Plan.
func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends a mutation. Nil mutations are ignored so repositories may
// return nil for no-op updates.
func (p *Plan) Add(mut *spanner.Mutation) {
	if mut != nil {
		p.mutations = append(p.mutations, mut)
	}
}

// Mutations returns the collected mutations.
func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

// IsEmpty reports whether the plan has nothing to commit.
func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

// Count returns the number of collected mutations.
func (p *Plan) Count() int {
	return len(p.mutations)
}

// Committer applies Plans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan in a single transaction. Applying an empty plan
// is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *Plan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("apply commit plan: %w", err)
	}
	return nil
}
