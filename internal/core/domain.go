package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type (
	Category       string
	SpendingStyle  string
	TrendDirection string

	// Transaction is an immutable ledger entry. Amount < 0 is an outflow,
	// Amount > 0 an inflow. Timestamp is optional; the zero value means the
	// entry only carries a calendar date.
	Transaction struct {
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
		Amount      float64   `json:"amount"`
		Category    Category  `json:"category"`
		Timestamp   time.Time `json:"timestamp,omitempty"`
	}

	// Range is a closed numeric interval used for sampling persona figures.
	Range struct {
		Min float64
		Max float64
	}

	// PersonaProfile declares one synthetic identity. It is read-only input
	// to persona instantiation and generation.
	PersonaProfile struct {
		IncomeRange     Range
		SavingsRange    Range
		SpendingStyle   SpendingStyle
		FocusCategories []Category
		TrendDirection  TrendDirection
	}

	// Persona is an instantiated profile: income and opening savings are
	// sampled exactly once here and held fixed for the persona's lifetime.
	Persona struct {
		ID             string
		Profile        PersonaProfile
		MonthlyIncome  float64
		SavingsBalance float64
	}
)

const (
	Frugal   SpendingStyle = "frugal"
	Moderate SpendingStyle = "moderate"
	Spender  SpendingStyle = "spender"

	Improving TrendDirection = "improving"
	Worsening TrendDirection = "worsening"
	Stable    TrendDirection = "stable"
)

// Category vocabulary. Transaction.Category is free text, but everything the
// generator emits and the aggregator special-cases comes from this set.
const (
	Coffee        Category = "Coffee"
	Groceries     Category = "Groceries"
	Dining        Category = "Dining"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Subscriptions Category = "Subscriptions"
	Utilities     Category = "Utilities"
	Entertainment Category = "Entertainment"
	Rent          Category = "Rent"
	Transfer      Category = "Transfer"
	Healthcare    Category = "Healthcare"
	Education     Category = "Education"
	Income        Category = "Income"
	Other         Category = "Other"
)

var (
	ErrInvalidRange = errors.New("invalid range: min must be positive and not exceed max")
	ErrInvalidStyle = errors.New("invalid spending style")
	ErrInvalidTrend = errors.New("invalid trend direction")
)

func (r Range) Validate() error {
	if r.Min <= 0 || r.Max < r.Min {
		return ErrInvalidRange
	}
	return nil
}

func (s SpendingStyle) Validate() error {
	switch s {
	case Frugal, Moderate, Spender:
		return nil
	}
	return ErrInvalidStyle
}

func (d TrendDirection) Validate() error {
	switch d {
	case Improving, Worsening, Stable:
		return nil
	}
	return ErrInvalidTrend
}

func (p PersonaProfile) Validate() error {
	if err := p.IncomeRange.Validate(); err != nil {
		return err
	}
	if err := p.SavingsRange.Validate(); err != nil {
		return err
	}
	if err := p.SpendingStyle.Validate(); err != nil {
		return err
	}
	return p.TrendDirection.Validate()
}

// Focused reports whether the profile concentrates spend on the category.
func (p PersonaProfile) Focused(c Category) bool {
	for _, fc := range p.FocusCategories {
		if fc == c {
			return true
		}
	}
	return false
}

// Sampler yields uniform variates in [0,1). It is the only source of
// randomness persona instantiation depends on.
type Sampler interface {
	Float64() float64
}

// NewPersona instantiates a profile, sampling monthly income and opening
// savings once. Invalid profiles are rejected before any sampling happens.
func NewPersona(profile PersonaProfile, src Sampler) (Persona, error) {
	if err := profile.Validate(); err != nil {
		return Persona{}, err
	}
	return Persona{
		ID:             uuid.NewString(),
		Profile:        profile,
		MonthlyIncome:  sampleRange(profile.IncomeRange, src),
		SavingsBalance: sampleRange(profile.SavingsRange, src),
	}, nil
}

func sampleRange(r Range, src Sampler) float64 {
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// IsOutflow reports whether the transaction is an expense.
func (t Transaction) IsOutflow() bool {
	return t.Amount < 0
}
