package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// EventSubjectPrefix prefixes the NATS subject of every revenue event
const EventSubjectPrefix = "revenue"

// EventType identifies a revenue event
type EventType string

const (
	EventTypeDepositConfirmed    EventType = "deposit.confirmed"
	EventTypeDistributionCreated EventType = "distribution.created"
	EventTypeRewardClaimed       EventType = "reward.claimed"
	EventTypeDistributionExpired EventType = "distribution.expired"
)

// DepositRequestSubject is the subject revenue producers publish deposit requests on
const DepositRequestSubject = EventSubjectPrefix + ".deposits.requested"

// Event is the envelope of every published revenue event
type Event struct {
	ID        string    `json:"event_id"`
	Type      EventType `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// NewEvent creates an event with a fresh ULID
func NewEvent(eventType EventType, timestamp time.Time, data any) *Event {
	return &Event{
		ID:        ulid.Make().String(),
		Type:      eventType,
		Timestamp: timestamp,
		Data:      data,
	}
}

// Subject returns the NATS subject of the event, e.g. revenue.reward.claimed
func (e *Event) Subject() string {
	return EventSubjectPrefix + "." + string(e.Type)
}

// DepositConfirmedData is the payload of a deposit.confirmed event
type DepositConfirmedData struct {
	DepositID   string        `json:"deposit_id"`
	Amount      string        `json:"amount"`
	Source      RevenueSource `json:"source"`
	TxReference *string       `json:"tx_reference,omitempty"`
}

// DistributionCreatedData is the payload of a distribution.created event
type DistributionCreatedData struct {
	DistributionID  string    `json:"distribution_id"`
	RoundNumber     int64     `json:"round_number"`
	TotalAmount     string    `json:"total_amount"`
	EligibleWallets int       `json:"eligible_wallets"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// RewardClaimedData is the payload of a reward.claimed event
type RewardClaimedData struct {
	DistributionID string `json:"distribution_id"`
	WalletAddress  string `json:"wallet_address"`
	ClaimAmount    string `json:"claim_amount"`
}

// DistributionExpiredData is the payload of a distribution.expired event
type DistributionExpiredData struct {
	DistributionID  string       `json:"distribution_id"`
	RoundNumber     int64        `json:"round_number"`
	ReclaimedAmount string       `json:"reclaimed_amount"`
	Policy          ExpiryPolicy `json:"policy"`
}

// DepositRequest is a deposit published by a revenue producer on DepositRequestSubject
type DepositRequest struct {
	Amount      string         `json:"amount"`
	Source      string         `json:"source"`
	SourceID    *string        `json:"source_id,omitempty"`
	Description *string        `json:"description,omitempty"`
	TxReference *string        `json:"tx_reference,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
