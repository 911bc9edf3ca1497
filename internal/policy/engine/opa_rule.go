// Package engine evaluates proposal execution policies written in Rego.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"

	"collective-ledger/internal/ledger"
)

// Query is the rule every execution policy must define.
const Query = "data.ledger.execution.allow"

// DefaultRegoPolicy encodes the strict-majority rule: more than half of the current members voted.
const DefaultRegoPolicy = `package ledger.execution

default allow := false

allow if {
	input.vote_count * 2 > input.member_count
}
`

// ErrUndecided is returned when the policy yields no boolean for allow.
var ErrUndecided = errors.New("policy: allow is undefined or not a boolean")

// OPARule is a ledger.Rule backed by a prepared Rego query. Safe for concurrent use.
type OPARule struct {
	query rego.PreparedEvalQuery
}

var _ ledger.Rule = (*OPARule)(nil)

// NewOPARule compiles policy (Rego source) and prepares the allow query.
// An empty policy uses DefaultRegoPolicy.
func NewOPARule(ctx context.Context, policy string) (*OPARule, error) {
	if policy == "" {
		policy = DefaultRegoPolicy
	}
	compiler, err := ast.CompileModules(map[string]string{"execution.rego": policy})
	if err != nil {
		return nil, fmt.Errorf("compile execution policy: %w", err)
	}
	pq, err := rego.New(
		rego.Query(Query),
		rego.Compiler(compiler),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare execution policy: %w", err)
	}
	return &OPARule{query: pq}, nil
}

// LoadPolicyFile reads a Rego policy from path and builds an OPARule.
func LoadPolicyFile(ctx context.Context, path string) (*OPARule, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read execution policy: %w", err)
	}
	return NewOPARule(ctx, string(src))
}

// Allows evaluates the policy for t.
func (r *OPARule) Allows(ctx context.Context, t ledger.Tally) (bool, error) {
	rs, err := r.query.Eval(ctx, rego.EvalInput(input(t)))
	if err != nil {
		return false, fmt.Errorf("eval execution policy: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return false, ErrUndecided
	}
	allow, ok := rs[0].Expressions[0].Value.(bool)
	if !ok {
		return false, ErrUndecided
	}
	return allow, nil
}

// healthTally is a unanimous single-member tally every sane policy can decide.
var healthTally = ledger.Tally{VoteCount: 1, MemberCount: 1}

// HealthCheck evaluates the loaded policy on a known tally. A policy that errors
// or leaves allow undefined makes the rule unhealthy.
func (r *OPARule) HealthCheck(ctx context.Context) error {
	if _, err := r.Allows(ctx, healthTally); err != nil {
		return fmt.Errorf("policy health: %w", err)
	}
	return nil
}

// HealthCheck compiles DefaultRegoPolicy and checks it on a known tally.
func HealthCheck(ctx context.Context) error {
	rule, err := NewOPARule(ctx, DefaultRegoPolicy)
	if err != nil {
		return err
	}
	allow, err := rule.Allows(ctx, ledger.Tally{VoteCount: 2, MemberCount: 3})
	if err != nil {
		return err
	}
	if !allow {
		return fmt.Errorf("policy: default policy rejected 2 of 3")
	}
	return nil
}

func input(t ledger.Tally) map[string]interface{} {
	return map[string]interface{}{
		"proposal_index": t.ProposalIndex,
		"vote_count":     t.VoteCount,
		"member_count":   t.MemberCount,
	}
}
