// Package entity holds the client's in-memory note tree.
//
// [Store] is the single owner of the tree on a client. The UI mutates it
// through setters, the sync loops read snapshots from it and apply server
// deltas to it. Every setter is a no-op when the value does not change, so a
// redundant call never bumps lastModified and never wins a later merge by
// accident.
//
// Unknown ids are tolerated everywhere: getters report absence, setters do
// nothing. A partially synced tree may reference entities that have not
// arrived yet.
package entity
