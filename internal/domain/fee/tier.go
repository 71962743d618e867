package fee

type Tier string

const (
	TierStandard Tier = "standard"
	TierMember   Tier = "member"
)

func TierOf(hasActiveSubscription bool) Tier {
	if hasActiveSubscription {
		return TierMember
	}
	return TierStandard
}

// RoyaltyBps applies the tier discount: members keep half the royalty cut.
func (t Tier) RoyaltyBps(bps uint32) uint32 {
	if t == TierMember {
		return bps / 2
	}
	return bps
}
