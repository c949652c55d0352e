package review

import (
	"time"

	"coach-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotEligible      = errs.Class("no completed, unreviewed reservation for this activity", errs.ErrNotEligible)
	ErrAlreadyReviewed  = errs.Class("review already exists for this activity", errs.ErrDuplicateReview)
	ErrMissingReference = errs.Class("member, activity and coach are required", errs.ErrValidation)
	ErrNotFound         = errs.Class("review not found", errs.ErrNotFound)
)

type Review struct {
	id         uuid.UUID
	memberID   uuid.UUID
	activityID uuid.UUID
	coachID    uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReview validates inputs. coachID is the activity's coach at review time.
func NewReview(id, memberID, activityID, coachID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if memberID == uuid.Nil || activityID == uuid.Nil || coachID == uuid.Nil {
		return nil, ErrMissingReference
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		memberID:   memberID,
		activityID: activityID,
		coachID:    coachID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReview(id, memberID, activityID, coachID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:         id,
		memberID:   memberID,
		activityID: activityID,
		coachID:    coachID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Review) Edit(rating Rating, comment Comment, now time.Time) {
	r.rating = rating
	r.comment = comment
	r.updatedAt = now
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) MemberID() uuid.UUID   { return r.memberID }
func (r *Review) ActivityID() uuid.UUID { return r.activityID }
func (r *Review) CoachID() uuid.UUID    { return r.coachID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
