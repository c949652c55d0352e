//go:build unit || e2e

package builder

import (
	"time"

	domreview "coach-booking-api/internal/domain/review"
	reqdto "coach-booking-api/internal/handler/dto/request"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	MemberID      uuid.UUID
	MemberEmail   string
	ActivityID    uuid.UUID
	ActivityTitle string
	CoachID       uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		MemberID:      uuid.New(),
		MemberEmail:   "member@example.com",
		ActivityID:    uuid.New(),
		ActivityTitle: "Morning Yoga",
		CoachID:       uuid.New(),
		Rating:        5,
		Comment:       "Great session!",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.MemberID, r.ActivityID, r.CoachID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:         uuid.New(),
		MemberID:   r.MemberID,
		ActivityID: r.ActivityID,
		CoachID:    r.CoachID,
		Rating:     int32(r.Rating),
		Comment:    pgtype.Text{String: r.Comment, Valid: r.Comment != ""},
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ActivityID: r.ActivityID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            uuid.New(),
		MemberID:      r.MemberID,
		MemberEmail:   r.MemberEmail,
		ActivityID:    r.ActivityID,
		ActivityTitle: r.ActivityTitle,
		CoachID:       r.CoachID,
		Rating:        int32(r.Rating),
		Comment:       r.commentPtr(),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:          uuid.New(),
		MemberID:    r.MemberID,
		MemberEmail: r.MemberEmail,
		Rating:      int32(r.Rating),
		Comment:     r.commentPtr(),
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ReviewBuilder) commentPtr() *string {
	if r.Comment == "" {
		return nil
	}
	c := r.Comment
	return &c
}

// Fluent builder methods
func (r *ReviewBuilder) WithMemberID(memberID uuid.UUID) *ReviewBuilder {
	r.MemberID = memberID
	return r
}

func (r *ReviewBuilder) WithActivityID(activityID uuid.UUID) *ReviewBuilder {
	r.ActivityID = activityID
	return r
}

func (r *ReviewBuilder) WithCoachID(coachID uuid.UUID) *ReviewBuilder {
	r.CoachID = coachID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Coach never showed up"
	return r
}
