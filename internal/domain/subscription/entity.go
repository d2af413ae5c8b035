package subscription

import (
	"time"

	"booking-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownPlan = errs.New("unknown coaching plan")
	ErrMissingUser = errs.New("subscription requires a user")
)

type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanStandard Plan = "standard"
	PlanPremium  Plan = "premium"
)

func NewPlan(s string) (Plan, error) {
	p := Plan(s)
	switch p {
	case PlanBasic, PlanStandard, PlanPremium:
		return p, nil
	default:
		return "", ErrUnknownPlan
	}
}

func (p Plan) String() string { return string(p) }

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

// StripeRefs links a subscription to the provider objects that paid for it.
type StripeRefs struct {
	CustomerID     *string
	PaymentID      *string
	SubscriptionID *string
}

type Subscription struct {
	id        uuid.UUID
	userID    uuid.UUID
	plan      Plan
	status    Status
	refs      StripeRefs
	createdAt time.Time
}

func New(userID uuid.UUID, plan Plan, refs StripeRefs, now time.Time) (*Subscription, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if _, err := NewPlan(plan.String()); err != nil {
		return nil, err
	}
	return &Subscription{
		id:        uuid.New(),
		userID:    userID,
		plan:      plan,
		status:    StatusActive,
		refs:      refs,
		createdAt: now,
	}, nil
}

func (s *Subscription) ID() uuid.UUID          { return s.id }
func (s *Subscription) UserID() uuid.UUID      { return s.userID }
func (s *Subscription) Plan() Plan             { return s.plan }
func (s *Subscription) Status() Status         { return s.status }
func (s *Subscription) StripeRefs() StripeRefs { return s.refs }
func (s *Subscription) CreatedAt() time.Time   { return s.createdAt }
