// Package order provides the Order aggregate for the dispatch system. An
// order binds a driver to a pickup at a fixed time with pickup and delivery
// coordinates. Orders are immutable once created; the only state the store
// contributes after creation is the database-assigned id.
//
// The central derived value is the commitment window [pickup-D, pickup+D]:
// a driver may never hold two orders whose windows overlap. The window is
// derived here (Window method), but the invariant itself is enforced by the
// scheduling use case, which checks for conflicts inside the same transaction
// that inserts the order.
package order
