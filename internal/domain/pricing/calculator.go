package pricing

import (
	"fmt"
	"math"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/subscription"
)

const (
	CurrencyEUR = "eur"

	hourlyRateEUR   = 90
	intervalMonthly = "month"
)

// ErrUnknownPlan is returned for any plan outside the coaching table.
var ErrUnknownPlan = subscription.ErrUnknownPlan

var coachingPlanCents = map[subscription.Plan]int64{
	subscription.PlanBasic:    4000,
	subscription.PlanStandard: 9000,
	subscription.PlanPremium:  23000,
}

var coachingPlanNames = map[subscription.Plan]string{
	subscription.PlanBasic:    "Basic",
	subscription.PlanStandard: "Standard",
	subscription.PlanPremium:  "Premium",
}

// ConsultationCents prices a consultation at 90 EUR per hour. Callers validate the duration.
func ConsultationCents(durationMinutes int) int64 {
	return int64(math.Round(float64(hourlyRateEUR) * float64(durationMinutes) / 60 * 100))
}

func CoachingCents(plan string) (int64, error) {
	cents, ok := coachingPlanCents[subscription.Plan(plan)]
	if !ok {
		return 0, ErrUnknownPlan
	}
	return cents, nil
}

// Quote is what a checkout line item is built from.
type Quote struct {
	AmountCents int64
	Currency    string
	ProductName string
	Description string
	Recurring   bool
	Interval    string
}

type Calculator interface {
	Consultation(d appointment.Duration) Quote
	Coaching(plan subscription.Plan) (Quote, error)
}

type DefaultCalculator struct {
	Currency string
}

func NewDefaultCalculator(currency string) *DefaultCalculator {
	if currency == "" {
		currency = CurrencyEUR
	}
	return &DefaultCalculator{Currency: currency}
}

func (c *DefaultCalculator) Consultation(d appointment.Duration) Quote {
	return Quote{
		AmountCents: ConsultationCents(d.Minutes()),
		Currency:    c.Currency,
		ProductName: "Consultation",
		Description: fmt.Sprintf("%d minute consultation", d.Minutes()),
	}
}

func (c *DefaultCalculator) Coaching(plan subscription.Plan) (Quote, error) {
	cents, err := CoachingCents(plan.String())
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		AmountCents: cents,
		Currency:    c.Currency,
		ProductName: fmt.Sprintf("Coaching %s", coachingPlanNames[plan]),
		Description: fmt.Sprintf("Monthly %s coaching plan", plan),
		Recurring:   true,
		Interval:    intervalMonthly,
	}, nil
}
