package gateway

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	auditdomain "collective-ledger/internal/audit/domain"
	"collective-ledger/internal/platform/rbac"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

var errInvalidIndex = errors.New("proposal index must be an integer")

func (g *Gateway) joinDAO(c *gin.Context) {
	actor := c.GetString(actorKey)
	count, err := g.deps.Ledger.JoinDAO(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, joinResponse{Member: actor, MemberCount: count})
}

func (g *Gateway) listMembers(c *gin.Context) {
	c.JSON(http.StatusOK, membersResponse{Members: g.deps.Ledger.Members()})
}

func (g *Gateway) isMember(c *gin.Context) {
	actor := c.Param("actor")
	c.JSON(http.StatusOK, gin.H{
		"actor":     actor,
		"is_member": g.deps.Ledger.IsMember(actor),
	})
}

func (g *Gateway) createProposal(c *gin.Context) {
	var req createProposalRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody{Error: err.Error(), Kind: kindInvalidArgument})
			return
		}
	}
	idx, err := g.deps.Ledger.CreateProposal(c.Request.Context(), c.GetString(actorKey), req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createProposalResponse{Index: idx})
}

func (g *Gateway) listProposals(c *gin.Context) {
	list := g.deps.Ledger.ListProposals()
	out := make([]proposalView, 0, len(list))
	for _, p := range list {
		out = append(out, toProposalView(p))
	}
	c.JSON(http.StatusOK, proposalsResponse{Proposals: out})
}

func (g *Gateway) getProposal(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	p, err := g.deps.Ledger.GetProposal(idx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposalResponse{Proposal: toProposalView(p)})
}

func (g *Gateway) vote(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	votes, err := g.deps.Ledger.Vote(c.Request.Context(), c.GetString(actorKey), idx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, voteResponse{VoteCount: votes})
}

func (g *Gateway) executeProposal(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	p, err := g.deps.Ledger.ExecuteProposal(c.Request.Context(), c.GetString(actorKey), idx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposalResponse{Proposal: toProposalView(p)})
}

type auditEntry struct {
	ID            string    `json:"id"`
	Actor         string    `json:"actor"`
	Action        string    `json:"action"`
	Resource      string    `json:"resource"`
	ProposalIndex *int      `json:"proposal_index,omitempty"`
	Outcome       string    `json:"outcome"`
	ErrorKind     string    `json:"error_kind,omitempty"`
	IP            string    `json:"ip"`
	CreatedAt     time.Time `json:"created_at"`
}

func (g *Gateway) listAudit(c *gin.Context) {
	if g.deps.Audit == nil {
		c.JSON(http.StatusNotImplemented, errorBody{Error: "audit trail not configured"})
		return
	}
	if _, err := rbac.RequireMember(c.Request.Context(), g.deps.Ledger); err != nil {
		writeError(c, err)
		return
	}
	limit := queryInt(c, "limit", defaultAuditLimit)
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	list, err := g.deps.Audit.List(c.Request.Context(), int32(limit), int32(offset))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]auditEntry, 0, len(list))
	for _, a := range list {
		out = append(out, auditToJSON(a))
	}
	c.JSON(http.StatusOK, gin.H{"audit_logs": out})
}

func auditToJSON(a *auditdomain.AuditLog) auditEntry {
	return auditEntry{
		ID:            a.ID,
		Actor:         a.Actor,
		Action:        a.Action,
		Resource:      a.Resource,
		ProposalIndex: a.ProposalIndex,
		Outcome:       a.Outcome,
		ErrorKind:     a.ErrorKind,
		IP:            a.IP,
		CreatedAt:     a.CreatedAt,
	}
}

// indexParam parses :index. On failure it writes a 400 and returns false.
func indexParam(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: errInvalidIndex.Error(), Kind: kindInvalidArgument})
		return 0, false
	}
	return idx, true
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
