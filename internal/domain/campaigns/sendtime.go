package campaigns

import "time"

// SendTimeScorer picks a delivery slot for a campaign. The product surfaces
// this as "optimal send time"; the engine treats it as an injected policy
// with no statistical contract, so deployments can plug in whatever model
// they actually have data for.
type SendTimeScorer interface {
	BestSendTime(listSize int, notBefore time.Time) time.Time
}

// FixedHourScorer is the default: the next occurrence of SendHour (local
// time) at least one hour after notBefore. Deterministic and deliberately
// simple; it exists so scheduling works before anyone wires a real model.
type FixedHourScorer struct {
	SendHour int
}

func (s FixedHourScorer) BestSendTime(listSize int, notBefore time.Time) time.Time {
	earliest := notBefore.Add(time.Hour)
	candidate := time.Date(earliest.Year(), earliest.Month(), earliest.Day(), s.SendHour, 0, 0, 0, earliest.Location())
	if !candidate.After(earliest) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// DefaultScorer targets mid-morning, a common default for marketing sends.
var DefaultScorer SendTimeScorer = FixedHourScorer{SendHour: 10}
