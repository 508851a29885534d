// Package models defines the core data structures for gadgets, their change
// history, and the encrypted export envelope.
package models

import "time"

// Gadget represents a tracked inventory item.
type Gadget struct {
	// ID is the unique, immutable identifier of the gadget.
	ID string `json:"id"`
	// Name is the display name of the gadget. Never empty.
	Name string `json:"name"`
	// Brand is the manufacturer name. Never empty.
	Brand string `json:"brand"`
	// Price is the item price. Never negative.
	Price float64 `json:"price"`
	// AddedAt is the creation timestamp (UTC).
	AddedAt time.Time `json:"addedAt"`
}

// Action identifies the kind of change recorded in a history entry.
type Action string

const (
	// ActionAdd records the creation of a gadget.
	ActionAdd Action = "ADD"
	// ActionUpdate records a field change on an existing gadget.
	ActionUpdate Action = "UPDATE"
	// ActionDelete records the removal of a gadget.
	ActionDelete Action = "DELETE"
)

// Valid reports whether a is one of the known action values.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// HistoryEntry is an immutable audit record of one ADD/UPDATE/DELETE action.
type HistoryEntry struct {
	// Action is the kind of change that was applied.
	Action Action `json:"action"`
	// Gadget is an independent snapshot of the record at the time of the
	// action, never a reference into live store state.
	Gadget Gadget `json:"gadget"`
	// Timestamp is when the action was recorded (UTC).
	Timestamp time.Time `json:"timestamp"`
}

// EncryptedExport is the versioned, symmetric-cipher-protected serialization
// of a store's full state. It is the only externally persisted artifact.
type EncryptedExport struct {
	// Version is the schema version stamp carried through export and import.
	Version int `json:"version"`
	// IV is the hex-encoded 16-byte initialization vector, freshly generated
	// for every export.
	IV string `json:"iv"`
	// Data is the hex-encoded AES-256-CBC ciphertext of the serialized state.
	Data string `json:"data"`
}
