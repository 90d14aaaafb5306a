package statuscache

import "slices"

// ShipStatusType tags what a tracked ship is currently doing.
type ShipStatusType string

const (
	StatusIdle       ShipStatusType = "Idle"
	StatusTraveling  ShipStatusType = "Traveling"
	StatusMining     ShipStatusType = "Mining"
	StatusDelivering ShipStatusType = "Delivering"
	StatusRefueling  ShipStatusType = "Refueling"
	StatusRepairing  ShipStatusType = "Repairing"
)

// SurveySize classifies how much a survey's deposits can yield.
type SurveySize string

const (
	SurveySmall  SurveySize = "Small"
	SurveyMedium SurveySize = "Medium"
	SurveyLarge  SurveySize = "Large"
)

// CargoItem is one stack of goods in a ship's cargo hold.
type CargoItem struct {
	TradeSymbol string `json:"trade_symbol"`
	Units       int    `json:"units"`
}

// ShipStatus is the cached view of a single ship, keyed by ShipSymbol.
// LastUpdated is stamped by the storage on every update; ExpiresAt is
// filled by the storage when nil (nil means the record never expires).
type ShipStatus struct {
	ShipSymbol  string         `json:"ship_symbol"`
	Status      ShipStatusType `json:"status_type"`
	Location    string         `json:"location"`
	Cargo       []CargoItem    `json:"cargo"`
	Fuel        int            `json:"fuel"`
	LastUpdated int64          `json:"last_updated"`
	ExpiresAt   *int64         `json:"expires_at,omitempty"`
}

// Clone returns a deep copy that shares no memory with the receiver.
func (s ShipStatus) Clone() ShipStatus {
	s.Cargo = slices.Clone(s.Cargo)
	if s.ExpiresAt != nil {
		expiresAt := *s.ExpiresAt
		s.ExpiresAt = &expiresAt
	}
	return s
}

// Survey is the cached survey of a waypoint, keyed by Symbol. Each
// waypoint holds at most one active survey. Expiration of 0 means
// "unset" and is replaced by the storage with now+maxAge on update.
type Survey struct {
	Symbol     string     `json:"symbol"`
	Deposits   []string   `json:"deposits"`
	Expiration int64      `json:"expiration"`
	Size       SurveySize `json:"size"`
}

// Clone returns a deep copy that shares no memory with the receiver.
func (s Survey) Clone() Survey {
	s.Deposits = slices.Clone(s.Deposits)
	return s
}

// ScanMaterial is one material reading from a waypoint scan.
type ScanMaterial struct {
	Symbol string `json:"symbol"`
	Units  int    `json:"units"`
}

// Scan is the cached scan of a waypoint, keyed by Symbol. Scans share
// the Survey keyspace convention but live in their own collection, and
// use the same zero-means-unset Expiration convention.
type Scan struct {
	Symbol     string         `json:"symbol"`
	Materials  []ScanMaterial `json:"materials"`
	Expiration int64          `json:"expiration"`
}

// Clone returns a deep copy that shares no memory with the receiver.
func (s Scan) Clone() Scan {
	s.Materials = slices.Clone(s.Materials)
	return s
}
