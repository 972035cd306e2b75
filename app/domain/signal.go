package domain

import "time"

// SignalDirection is the side of a trading signal
type SignalDirection string

const (
	SignalLong  SignalDirection = "long"
	SignalShort SignalDirection = "short"
)

// Signal is a mocked trading-signal record served read-only to the UI. No
// signal computation happens in this service; the catalog is static fixture
// data shipped with the binary.
type Signal struct {
	ID         string          `json:"id" yaml:"id"`
	Symbol     string          `json:"symbol" yaml:"symbol"`
	Direction  SignalDirection `json:"direction" yaml:"direction"`
	Entry      float64         `json:"entry" yaml:"entry"`
	StopLoss   float64         `json:"stop_loss" yaml:"stop_loss"`
	TakeProfit float64         `json:"take_profit" yaml:"take_profit"`
	Confidence float64         `json:"confidence" yaml:"confidence"`
	Tier       SubscriptionTier `json:"tier" yaml:"tier"`
	IssuedAt   time.Time       `json:"issued_at" yaml:"issued_at"`
}

// VisibleTo returns true if a profile's subscription tier may view the signal.
// A nil profile sees only free-tier signals.
func (s Signal) VisibleTo(profile *Profile) bool {
	if s.Tier == TierFree {
		return true
	}
	if profile == nil {
		return false
	}
	switch profile.SubscriptionTier {
	case TierElite:
		return true
	case TierPro:
		return s.Tier != TierElite
	default:
		return false
	}
}
