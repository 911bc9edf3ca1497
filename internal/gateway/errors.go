package gateway

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"collective-ledger/internal/ledger"
)

const (
	kindUnauthenticated = "Unauthenticated"
	kindInvalidArgument = "InvalidArgument"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// writeError renders err as {"error", "kind"} with the HTTP status for its ledger kind.
func writeError(c *gin.Context, err error) {
	code, kind := httpStatus(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("gateway: request failed")
	}
	c.JSON(code, errorBody{Error: err.Error(), Kind: kind})
}

func httpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ledger.ErrEmptyActor):
		return http.StatusBadRequest, ledger.Kind(err)
	case errors.Is(err, ledger.ErrAlreadyMember),
		errors.Is(err, ledger.ErrAlreadyVoted),
		errors.Is(err, ledger.ErrAlreadyExecuted):
		return http.StatusConflict, ledger.Kind(err)
	case errors.Is(err, ledger.ErrNotAMember):
		return http.StatusForbidden, ledger.Kind(err)
	case errors.Is(err, ledger.ErrInvalidProposal):
		return http.StatusNotFound, ledger.Kind(err)
	case errors.Is(err, ledger.ErrInsufficientVotes):
		return http.StatusUnprocessableEntity, ledger.Kind(err)
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unauthenticated:
			return http.StatusUnauthorized, kindUnauthenticated
		case codes.PermissionDenied:
			return http.StatusForbidden, ledger.Kind(ledger.ErrNotAMember)
		case codes.InvalidArgument:
			return http.StatusBadRequest, kindInvalidArgument
		}
	}
	return http.StatusInternalServerError, ""
}
