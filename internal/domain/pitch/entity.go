package pitch

import (
	"strings"
	"time"

	"booking-checkout/internal/domain/contact"
	"booking-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownProject = errs.New("project must be GalowClub or Perspectiv")

type Project string

const (
	ProjectGalowClub  Project = "GalowClub"
	ProjectPerspectiv Project = "Perspectiv"
)

func NewProject(s string) (Project, error) {
	p := Project(strings.TrimSpace(s))
	switch p {
	case ProjectGalowClub, ProjectPerspectiv:
		return p, nil
	default:
		return "", ErrUnknownProject
	}
}

func (p Project) String() string { return string(p) }

const StatusSubmitted = "submitted"

// Request is a pitch-deck request. It needs no payment and may be anonymous.
type Request struct {
	id        uuid.UUID
	project   Project
	userID    *uuid.UUID
	contact   contact.Info
	role      string
	status    string
	createdAt time.Time
}

func NewRequest(project Project, userID *uuid.UUID, info contact.Info, role string, now time.Time) *Request {
	return &Request{
		id:        uuid.New(),
		project:   project,
		userID:    userID,
		contact:   info,
		role:      strings.TrimSpace(role),
		status:    StatusSubmitted,
		createdAt: now,
	}
}

func (r *Request) ID() uuid.UUID         { return r.id }
func (r *Request) Project() Project      { return r.project }
func (r *Request) UserID() *uuid.UUID    { return r.userID }
func (r *Request) Contact() contact.Info { return r.contact }
func (r *Request) Role() string          { return r.role }
func (r *Request) Status() string        { return r.status }
func (r *Request) CreatedAt() time.Time  { return r.createdAt }
