// Package domain defines core data structures used throughout the rebalancer.
package domain

// Action represents the type of trading action to be performed.
type Action int

const (
	// ActionBuy increases a position.
	ActionBuy Action = iota
	// ActionSell decreases a position.
	ActionSell
)

// action string constants to avoid magic strings
const (
	actionStringBuy  = "BUY"
	actionStringSell = "SELL"
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionBuy:
		return actionStringBuy
	case ActionSell:
		return actionStringSell
	default:
		return "unknown"
	}
}
