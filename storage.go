// Package statuscache caches ship, survey and scan state from the
// SpaceTraders API for a bounded time window, so the bot can answer
// "do I already know this, and is it still fresh" without another
// round trip.
package statuscache

import (
	"github.com/google/uuid"
	"github.com/haiyiyun/log"
)

// DefaultMaxAgeSeconds is the TTL applied to records written without
// an explicit expiry when the storage was built with New.
const DefaultMaxAgeSeconds int64 = 300

// StatusStorage holds three independent keyed collections (ship
// statuses, surveys, scans) under one expiry policy. Records stay in
// place after expiring; they are hidden by the getters and reclaimed
// only by an explicit ClearExpired sweep.
//
// StatusStorage is not safe for concurrent use. Callers that share one
// across goroutines must wrap it in their own lock.
type StatusStorage struct {
	statuses map[string]ShipStatus // keyed by ship symbol
	surveys  map[string]Survey     // keyed by waypoint symbol
	scans    map[string]Scan       // keyed by waypoint symbol

	maxAgeSeconds int64
	clock         Clock
	id            string
}

// New creates a storage with the default max age of 300 seconds.
func New() *StatusStorage {
	return WithMaxAge(DefaultMaxAgeSeconds)
}

// WithMaxAge creates a storage whose unset expiries are computed as
// now+maxAgeSeconds. A max age of 0 is allowed: records written
// without an expiry are already expired the instant they land.
func WithMaxAge(maxAgeSeconds int64) *StatusStorage {
	return newStorage(maxAgeSeconds, systemClock{})
}

func newStorage(maxAgeSeconds int64, clock Clock) *StatusStorage {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}
	return &StatusStorage{
		statuses:      make(map[string]ShipStatus),
		surveys:       make(map[string]Survey),
		scans:         make(map[string]Scan),
		maxAgeSeconds: maxAgeSeconds,
		clock:         clock,
		id:            uuid.NewString(),
	}
}

// ID returns the storage instance id, useful when a bot runs several
// caches and needs to tell their log lines apart.
func (s *StatusStorage) ID() string {
	return s.id
}

// now returns the current unix second. When the clock is unreadable,
// or reports a pre-epoch time, it falls back to second 0. The fallback
// keeps parity with earlier revisions of the bot, which swallowed
// clock errors by substituting a zero duration since the epoch; under
// it every record with a positive expiry reads as live.
func (s *StatusStorage) now() int64 {
	t, err := s.clock.Now()
	if err != nil {
		log.Warnf("statuscache %s: wall clock unavailable, treating now as epoch: %v", s.id, err)
		return 0
	}
	if sec := t.Unix(); sec > 0 {
		return sec
	}
	return 0
}

// isLive is the one expiry predicate shared by every collection. A
// record expiring exactly at now is already dead.
func isLive(expiration, now int64) bool {
	return expiration > now
}

// UpdateStatus inserts or overwrites the status keyed by its ship
// symbol. LastUpdated is always stamped with the current time; an
// ExpiresAt supplied by the caller is preserved, a nil one is filled
// with now+maxAge.
func (s *StatusStorage) UpdateStatus(status ShipStatus) {
	now := s.now()
	status = status.Clone()
	status.LastUpdated = now
	if status.ExpiresAt == nil {
		expiresAt := now + s.maxAgeSeconds
		status.ExpiresAt = &expiresAt
	}
	s.statuses[status.ShipSymbol] = status
}

// GetStatus returns a copy of the ship's status if it is present and
// not expired. A record with a nil expiry never expires here — the
// opposite of what IsValid says about the same record.
func (s *StatusStorage) GetStatus(shipSymbol string) (ShipStatus, bool) {
	status, ok := s.statuses[shipSymbol]
	if !ok {
		return ShipStatus{}, false
	}
	if status.ExpiresAt != nil && !isLive(*status.ExpiresAt, s.now()) {
		return ShipStatus{}, false
	}
	return status.Clone(), true
}

// RemoveStatus deletes the ship's status; absent keys are a no-op.
func (s *StatusStorage) RemoveStatus(shipSymbol string) {
	delete(s.statuses, shipSymbol)
}

// IsValid reports whether the ship has a live, expiring status.
//
// Quirk, kept for parity with the original bot: a present record with
// a nil expiry reports false here even though GetStatus returns it.
// Do not "fix" one side without the other.
func (s *StatusStorage) IsValid(shipSymbol string) bool {
	status, ok := s.statuses[shipSymbol]
	if !ok || status.ExpiresAt == nil {
		return false
	}
	return isLive(*status.ExpiresAt, s.now())
}

// GetAllValidStatuses returns copies of every status that is either
// unexpiring or still live. Order is unspecified.
func (s *StatusStorage) GetAllValidStatuses() []ShipStatus {
	now := s.now()
	statuses := make([]ShipStatus, 0, len(s.statuses))
	for _, status := range s.statuses {
		if status.ExpiresAt == nil || isLive(*status.ExpiresAt, now) {
			statuses = append(statuses, status.Clone())
		}
	}
	return statuses
}

// UpdateSurvey inserts or overwrites the survey keyed by its waypoint
// symbol. An Expiration of 0 means unset and is replaced with
// now+maxAge; any other value is preserved.
func (s *StatusStorage) UpdateSurvey(survey Survey) {
	survey = survey.Clone()
	if survey.Expiration == 0 {
		survey.Expiration = s.now() + s.maxAgeSeconds
	}
	s.surveys[survey.Symbol] = survey
}

// GetSurvey returns a copy of the waypoint's survey if one is stored.
//
// Quirk, kept for parity with the original bot: unlike GetStatus this
// does not filter expired records. Freshness checks for surveys go
// through IsSurveyValid.
func (s *StatusStorage) GetSurvey(waypointSymbol string) (Survey, bool) {
	survey, ok := s.surveys[waypointSymbol]
	if !ok {
		return Survey{}, false
	}
	return survey.Clone(), true
}

// RemoveSurvey deletes the waypoint's survey; absent keys are a no-op.
func (s *StatusStorage) RemoveSurvey(waypointSymbol string) {
	delete(s.surveys, waypointSymbol)
}

// IsSurveyValid reports whether the waypoint has a live survey.
func (s *StatusStorage) IsSurveyValid(waypointSymbol string) bool {
	survey, ok := s.surveys[waypointSymbol]
	return ok && isLive(survey.Expiration, s.now())
}

// GetAllValidSurveys returns copies of every live survey. Order is
// unspecified.
func (s *StatusStorage) GetAllValidSurveys() []Survey {
	now := s.now()
	surveys := make([]Survey, 0, len(s.surveys))
	for _, survey := range s.surveys {
		if isLive(survey.Expiration, now) {
			surveys = append(surveys, survey.Clone())
		}
	}
	return surveys
}

// UpdateScan inserts or overwrites the scan keyed by its waypoint
// symbol, with the same zero-means-unset Expiration convention as
// UpdateSurvey.
func (s *StatusStorage) UpdateScan(scan Scan) {
	scan = scan.Clone()
	if scan.Expiration == 0 {
		scan.Expiration = s.now() + s.maxAgeSeconds
	}
	s.scans[scan.Symbol] = scan
}

// GetScan returns a copy of the waypoint's scan if one is stored. Like
// GetSurvey it does not filter expired records; use IsScanValid.
func (s *StatusStorage) GetScan(waypointSymbol string) (Scan, bool) {
	scan, ok := s.scans[waypointSymbol]
	if !ok {
		return Scan{}, false
	}
	return scan.Clone(), true
}

// RemoveScan deletes the waypoint's scan; absent keys are a no-op.
func (s *StatusStorage) RemoveScan(waypointSymbol string) {
	delete(s.scans, waypointSymbol)
}

// IsScanValid reports whether the waypoint has a live scan.
func (s *StatusStorage) IsScanValid(waypointSymbol string) bool {
	scan, ok := s.scans[waypointSymbol]
	return ok && isLive(scan.Expiration, s.now())
}

// GetAllValidScans returns copies of every live scan. Order is
// unspecified.
func (s *StatusStorage) GetAllValidScans() []Scan {
	now := s.now()
	scans := make([]Scan, 0, len(s.scans))
	for _, scan := range s.scans {
		if isLive(scan.Expiration, now) {
			scans = append(scans, scan.Clone())
		}
	}
	return scans
}

// ClearExpired removes every expired record across all three
// collections. Statuses with a nil expiry are kept. Nothing calls this
// automatically; a periodic task outside the storage must, or expired
// entries that are never read again sit in memory forever.
func (s *StatusStorage) ClearExpired() {
	now := s.now()
	for symbol, status := range s.statuses {
		if status.ExpiresAt != nil && !isLive(*status.ExpiresAt, now) {
			delete(s.statuses, symbol)
		}
	}
	for symbol, survey := range s.surveys {
		if !isLive(survey.Expiration, now) {
			delete(s.surveys, symbol)
		}
	}
	for symbol, scan := range s.scans {
		if !isLive(scan.Expiration, now) {
			delete(s.scans, symbol)
		}
	}
}

// Len returns the number of stored ship statuses, expired or not.
//
// Quirk, kept for parity with the original bot: surveys and scans are
// not counted, while IsEmpty does consider them.
func (s *StatusStorage) Len() int {
	return len(s.statuses)
}

// IsEmpty reports whether all three collections are empty.
func (s *StatusStorage) IsEmpty() bool {
	return len(s.statuses) == 0 && len(s.surveys) == 0 && len(s.scans) == 0
}
