// Package ledgerv1 holds the protobuf messages and gRPC service for
// collective.ledger.v1.LedgerService, generated from ledger.proto with
// `buf generate` (see buf.gen.yaml at the repository root).
package ledgerv1
