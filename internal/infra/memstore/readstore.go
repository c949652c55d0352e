package memstore

import (
	"bytes"
	"context"
	"slices"
	"time"

	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/usecase/queries"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCoachNotFound = errs.Class("coach not found", errs.ErrNotFound)

var (
	_ queries.ReservationReadStore  = (*Store)(nil)
	_ queries.NotificationReadStore = (*Store)(nil)
)

// newestFirst orders by created_at DESC, id DESC.
func newestFirst(at, bt time.Time, aid, bid uuid.UUID) int {
	if c := bt.Compare(at); c != 0 {
		return c
	}
	return bytes.Compare(bid[:], aid[:])
}

// before reports whether (t, id) sorts strictly after the cursor in newest-first order.
func before(t time.Time, id uuid.UUID, lastAt time.Time, lastID uuid.UUID) bool {
	if !t.Equal(lastAt) {
		return t.Before(lastAt)
	}
	return bytes.Compare(id[:], lastID[:]) < 0
}

func truncate[T any](rows []T, limit int32) []T {
	if int(limit) < len(rows) {
		return rows[:limit]
	}
	return rows
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view *queries.ReservationView
		err  error
	)
	s.read(func(d *state) {
		res, ok := d.reservations[id]
		if !ok {
			err = reservation.ErrNotFound
			return
		}
		a := d.activities[res.ActivityID()]
		view = &queries.ReservationView{
			ID:            res.ID(),
			MemberID:      res.MemberID(),
			ActivityID:    res.ActivityID(),
			ActivityTitle: a.title,
			CoachID:       a.coachID,
			DayOfWeek:     res.Schedule().DayOfWeek(),
			Date:          res.Schedule().DateString(),
			StartTime:     res.Schedule().StartTime(),
			EndTime:       res.Schedule().EndTime(),
			Status:        res.Status().String(),
			Reviewed:      res.Reviewed(),
			CreatedAt:     res.CreatedAt(),
			UpdatedAt:     res.UpdatedAt(),
		}
	})
	return view, err
}

func (s *Store) reservationsOf(memberID uuid.UUID, keep func(r reservation.Reservation) bool) []*queries.ReservationListItem {
	var rows []reservation.Reservation
	s.read(func(d *state) {
		for _, r := range d.reservations {
			if r.MemberID() == memberID && keep(r) {
				rows = append(rows, r)
			}
		}
	})
	slices.SortFunc(rows, func(a, b reservation.Reservation) int {
		return newestFirst(a.CreatedAt(), b.CreatedAt(), a.ID(), b.ID())
	})

	out := make([]*queries.ReservationListItem, len(rows))
	for i, r := range rows {
		var title string
		s.read(func(d *state) { title = d.activities[r.ActivityID()].title })
		out[i] = &queries.ReservationListItem{
			ID:            r.ID(),
			ActivityID:    r.ActivityID(),
			ActivityTitle: title,
			Date:          r.Schedule().DateString(),
			StartTime:     r.Schedule().StartTime(),
			EndTime:       r.Schedule().EndTime(),
			Status:        r.Status().String(),
			Reviewed:      r.Reviewed(),
			CreatedAt:     r.CreatedAt(),
		}
	}
	return out
}

func (s *Store) FindByMemberFirstPage(_ context.Context, memberID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows := s.reservationsOf(memberID, func(reservation.Reservation) bool { return true })
	return truncate(rows, limit), nil
}

func (s *Store) FindByMemberKeyset(_ context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows := s.reservationsOf(memberID, func(r reservation.Reservation) bool {
		return before(r.CreatedAt(), r.ID(), lastCreatedAt, lastID)
	})
	return truncate(rows, limit), nil
}

// Review read side. The method set is shared with ReservationReadStore, so
// reviews are exposed through Reviews().

type ReviewStore struct{ s *Store }

func (s *Store) Reviews() *ReviewStore { return &ReviewStore{s: s} }

var _ queries.ReviewReadStore = (*ReviewStore)(nil)

func (r *ReviewStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	var (
		view *queries.ReviewView
		err  error
	)
	r.s.read(func(d *state) {
		rev, ok := d.reviews[id]
		if !ok {
			err = review.ErrNotFound
			return
		}
		view = &queries.ReviewView{
			ID:            rev.ID(),
			MemberID:      rev.MemberID(),
			MemberEmail:   d.users[rev.MemberID()].email,
			ActivityID:    rev.ActivityID(),
			ActivityTitle: d.activities[rev.ActivityID()].title,
			CoachID:       rev.CoachID(),
			Rating:        int32(rev.Rating().Value()),
			Comment:       rev.Comment().Ptr(),
			CreatedAt:     rev.CreatedAt(),
			UpdatedAt:     rev.UpdatedAt(),
		}
	})
	return view, err
}

func (r *ReviewStore) reviewsOf(activityID uuid.UUID, keep func(rev review.Review) bool) []*queries.ReviewListItem {
	var out []*queries.ReviewListItem
	r.s.read(func(d *state) {
		for _, rev := range d.reviews {
			if rev.ActivityID() != activityID || !keep(rev) {
				continue
			}
			out = append(out, &queries.ReviewListItem{
				ID:          rev.ID(),
				MemberID:    rev.MemberID(),
				MemberEmail: d.users[rev.MemberID()].email,
				Rating:      int32(rev.Rating().Value()),
				Comment:     rev.Comment().Ptr(),
				CreatedAt:   rev.CreatedAt(),
			})
		}
	})
	slices.SortFunc(out, func(a, b *queries.ReviewListItem) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return out
}

func (r *ReviewStore) FindByActivityFirstPage(_ context.Context, activityID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	return truncate(r.reviewsOf(activityID, func(review.Review) bool { return true }), limit), nil
}

func (r *ReviewStore) FindByActivityKeyset(_ context.Context, activityID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows := r.reviewsOf(activityID, func(rev review.Review) bool {
		return before(rev.CreatedAt(), rev.ID(), lastCreatedAt, lastID)
	})
	return truncate(rows, limit), nil
}

func (r *ReviewStore) ActivityRating(_ context.Context, activityID uuid.UUID) (*queries.RatingView, error) {
	var (
		view *queries.RatingView
		err  error
	)
	r.s.read(func(d *state) {
		a, ok := d.activities[activityID]
		if !ok {
			err = shared.ErrActivityNotFound
			return
		}
		view = &queries.RatingView{TargetID: activityID, Rating: a.agg.Rating, ReviewsCount: int32(a.agg.ReviewsCount)}
	})
	return view, err
}

func (r *ReviewStore) CoachRating(_ context.Context, coachID uuid.UUID) (*queries.RatingView, error) {
	var (
		view *queries.RatingView
		err  error
	)
	r.s.read(func(d *state) {
		u, ok := d.users[coachID]
		if !ok || u.role != user.RoleCoach {
			err = ErrCoachNotFound
			return
		}
		agg := d.coachProfiles[coachID]
		view = &queries.RatingView{TargetID: coachID, Rating: agg.Rating, ReviewsCount: int32(agg.ReviewsCount)}
	})
	return view, err
}

func (s *Store) FindByRecipient(_ context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	var out []*queries.NotificationView
	s.read(func(d *state) {
		for _, n := range d.notifications {
			if n.RecipientID() != recipientID || (unreadOnly && n.IsRead()) {
				continue
			}
			view := &queries.NotificationView{
				ID:        n.ID(),
				Title:     n.Title(),
				Message:   n.Message(),
				Type:      string(n.Type()),
				Read:      n.IsRead(),
				CreatedAt: n.CreatedAt(),
			}
			if rel := n.Related(); rel != nil {
				entityType, entityID := rel.EntityType, rel.EntityID
				view.RelatedEntityType = &entityType
				view.RelatedEntityID = &entityID
			}
			out = append(out, view)
		}
	})
	slices.SortFunc(out, func(a, b *queries.NotificationView) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return truncate(out, limit), nil
}

func (s *Store) CountUnread(_ context.Context, recipientID uuid.UUID) (int64, error) {
	var n int64
	s.read(func(d *state) {
		for _, item := range d.notifications {
			if item.RecipientID() == recipientID && !item.IsRead() {
				n++
			}
		}
	})
	return n, nil
}
