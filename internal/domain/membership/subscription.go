package membership

import (
	"math/bits"

	"github.com/ethereum/go-ethereum/common"
)

// Subscription is one (subscriber, package) record. An address may hold one
// per package.
type Subscription struct {
	subscriber     common.Address
	packageID      uint64
	expirationTime uint64
}

func NewSubscription(subscriber common.Address, packageID uint64) *Subscription {
	return &Subscription{subscriber: subscriber, packageID: packageID}
}

func ReconstructSubscription(subscriber common.Address, packageID, expirationTime uint64) *Subscription {
	return &Subscription{
		subscriber:     subscriber,
		packageID:      packageID,
		expirationTime: expirationTime,
	}
}

func (s *Subscription) Subscriber() common.Address { return s.subscriber }
func (s *Subscription) PackageID() uint64          { return s.packageID }
func (s *Subscription) ExpirationTime() uint64     { return s.expirationTime }

// Extend adds quantity × duration. A live subscription grows from its current
// expiration, a lapsed one restarts from now.
func (s *Subscription) Extend(quantity, duration, now uint64) error {
	add, err := periodLength(quantity, duration)
	if err != nil {
		return err
	}
	base := now
	if s.expirationTime > now {
		base = s.expirationTime
	}
	expiration, carry := bits.Add64(base, add, 0)
	if carry != 0 || expiration > maxStored {
		return ErrPeriodOverflow
	}
	s.expirationTime = expiration
	return nil
}

func periodLength(quantity, duration uint64) (uint64, error) {
	hi, lo := bits.Mul64(quantity, duration)
	if hi != 0 || lo > maxStored {
		return 0, ErrPeriodOverflow
	}
	return lo, nil
}

func (s *Subscription) ActiveAt(now uint64) bool {
	return s.expirationTime > now
}
