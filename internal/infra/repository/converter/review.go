package converter

import (
	"coach-booking-api/internal/domain/review"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:         r.ID(),
		MemberID:   r.MemberID(),
		ActivityID: r.ActivityID(),
		CoachID:    r.CoachID(),
		Rating:     int32(r.Rating().Value()),
		Comment:    pgconv.StringPtrToPgtype(r.Comment().Ptr()),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    int32(r.Rating().Value()),
		Comment:   pgconv.StringPtrToPgtype(r.Comment().Ptr()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

// ReviewFromRow trusts stored values; the table constraints mirror the domain rules.
func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(row.Comment.String)
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(
		row.ID,
		row.MemberID,
		row.ActivityID,
		row.CoachID,
		rating,
		comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
