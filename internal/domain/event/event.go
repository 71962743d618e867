package event

import "github.com/google/uuid"

type Kind string

const (
	CollectionCreated    Kind = "collection.created"
	CollectionUpdated    Kind = "collection.updated"
	NFTMinted            Kind = "nft.minted"
	NFTUpgraded          Kind = "nft.upgraded"
	PackageAdded         Kind = "package.added"
	PackageUpdated       Kind = "package.updated"
	MembershipSubscribed Kind = "membership.subscribed"
	PayoutRecorded       Kind = "payout.recorded"
	ShirtCreated         Kind = "shirt.created"
	ListingChanged       Kind = "merch.listing_changed"
	BalanceWithdrawn     Kind = "merch.balance_withdrawn"
	SettingsChanged      Kind = "settings.changed"
)

func (k Kind) String() string {
	return string(k)
}

// Event is a ledger fact written to the outbox in the same transaction as the
// state change it describes. PartitionKey keeps one aggregate's events ordered.
type Event struct {
	ID           uuid.UUID
	Kind         Kind
	PartitionKey string
	Payload      any
}

func New(kind Kind, partitionKey string, payload any) Event {
	return Event{
		ID:           uuid.New(),
		Kind:         kind,
		PartitionKey: partitionKey,
		Payload:      payload,
	}
}
