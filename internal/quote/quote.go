package quote

import (
	"time"

	"github.com/Simplici0/coatquote/internal/estimate"
	"github.com/Simplici0/coatquote/internal/pricing"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// CustomerInfo identifies who the quote is prepared for.
type CustomerInfo struct {
	Name           string `json:"name"`
	Company        string `json:"company"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	ProjectAddress string `json:"projectAddress"`
}

// State is the editable quote: everything a user changes between saves.
type State struct {
	Date         string         `json:"date"`
	Inputs       estimate.Input `json:"inputs"`
	Prices       pricing.Prices `json:"prices"`
	ProfitMargin float64        `json:"profitMargin"`
	CustomerInfo CustomerInfo   `json:"customerInfo"`
}

// Quote is the persisted form of a State. Saved quotes carry an ID and
// SavedAt; exported files carry ExportedAt instead.
type Quote struct {
	ID           int64          `json:"id,omitempty"`
	Date         string         `json:"date"`
	Inputs       estimate.Input `json:"inputs"`
	Prices       pricing.Prices `json:"prices"`
	ProfitMargin float64        `json:"profitMargin"`
	CustomerInfo CustomerInfo   `json:"customerInfo"`
	SavedAt      string         `json:"savedAt,omitempty"`
	ExportedAt   string         `json:"exportedAt,omitempty"`
}

// NewState returns a blank quote dated now.
func NewState(now time.Time) State {
	return State{
		Date:   FormatDate(now),
		Inputs: estimate.DefaultInput(),
	}
}

// FormatDate renders a quote date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp renders savedAt/exportedAt values in UTC with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Snapshot turns the state into a saved quote.
func Snapshot(s State, now time.Time) Quote {
	q := fromState(s)
	q.ID = now.UnixMilli()
	q.SavedAt = FormatTimestamp(now)
	return q
}

// State returns the editable part of a quote.
func (q Quote) State() State {
	return State{
		Date:         q.Date,
		Inputs:       q.Inputs,
		Prices:       q.Prices,
		ProfitMargin: q.ProfitMargin,
		CustomerInfo: q.CustomerInfo,
	}
}

func fromState(s State) Quote {
	return Quote{
		Date:         s.Date,
		Inputs:       s.Inputs,
		Prices:       s.Prices,
		ProfitMargin: s.ProfitMargin,
		CustomerInfo: s.CustomerInfo,
	}
}
