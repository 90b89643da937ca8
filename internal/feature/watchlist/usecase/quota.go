package usecase

// QuotaPolicy caps how many watchlist entries a user can hold per tier.
type QuotaPolicy struct {
	Standard int
	Premium  int
}

// DefaultQuotaPolicy returns the product limits: 5 entries for standard
// accounts, 20 for premium.
func DefaultQuotaPolicy() QuotaPolicy {
	return QuotaPolicy{Standard: 5, Premium: 20}
}

// MaxEntries returns the cap for the given tier.
func (q QuotaPolicy) MaxEntries(isPremium bool) int {
	if isPremium {
		return q.Premium
	}
	return q.Standard
}

// CanAdd reports whether a user holding current entries may add one more.
func (q QuotaPolicy) CanAdd(current int, isPremium bool) bool {
	return current < q.MaxEntries(isPremium)
}
