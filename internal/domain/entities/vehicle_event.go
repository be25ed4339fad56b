package entities

import (
	"time"
)

// VehicleEventType describes a catalog change
type VehicleEventType string

const (
	VehicleEventCreated VehicleEventType = "vehicle.created"
	VehicleEventUpdated VehicleEventType = "vehicle.updated"
	VehicleEventDeleted VehicleEventType = "vehicle.deleted"
)

// VehicleEvent is published on the event bus whenever the catalog changes.
// Consumers use it to drop derived state (response caches, the fitted
// recommendation transformer) that depends on the catalog snapshot.
type VehicleEvent struct {
	ID        string           `json:"id"`
	Type      VehicleEventType `json:"type"`
	VehicleID string           `json:"vehicle_id"`
	Timestamp time.Time        `json:"timestamp"`
}

// CatalogChannel is the pub/sub channel carrying vehicle events.
const CatalogChannel = "catalog.events"
