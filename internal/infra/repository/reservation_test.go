//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/infra"
	"coach-booking-api/internal/infra/repository"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/tests/common/builder"
	repositorymock "coach-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// Create Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: schedule is flattened into params",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx *mockDBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, "monday", arg.DayOfWeek)
						assert.Equal(t, "2025-03-03", arg.Date.Time.Format(reservation.DateLayout))
						assert.Equal(t, "10:00", arg.StartTime)
						assert.Equal(t, "pending", arg.Status)
						return nil
					})
			},
		},
		{
			name: "error: unknown activity",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, tx *mockDBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, tx *mockDBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, res, mockDB)

			actualError := repo.Create(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// GetForUpdate Tests
// =============================================================================

func TestReservationRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: row converts to a domain reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries)

		row := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildInfra()
		row.ID = id
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, id).Return(row, nil)

		res, err := repo.GetForUpdate(ctx, mockDB, id)

		require.NoError(t, err)
		assert.Equal(t, id, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, "monday", res.Schedule().DayOfWeek())
	})

	t.Run("error: missing row maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(mockQueries)

		mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		res, err := repo.GetForUpdate(ctx, &mockDBTX{}, id)

		require.ErrorIs(t, err, reservation.ErrNotFound)
		assert.Nil(t, res)
	})

	t.Run("error: corrupt status is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(mockQueries)

		row := builder.NewReservationBuilder().BuildInfra()
		row.Status = "archived"
		mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), id).Return(row, nil)

		_, err := repo.GetForUpdate(ctx, &mockDBTX{}, id)

		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

// =============================================================================
// UpdateStatus / ListCompletedForUpdate / MarkReviewed Tests
// =============================================================================

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries)

	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	_, err = res.TransitionTo(reservation.StatusConfirmed, time.Now())
	require.NoError(t, err)

	mockQueries.EXPECT().UpdateReservationStatus(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error {
			assert.Equal(t, res.ID(), arg.ID)
			assert.Equal(t, "confirmed", arg.Status)
			assert.True(t, arg.UpdatedAt.Valid)
			return nil
		})

	require.NoError(t, repo.UpdateStatus(ctx, mockDB, res))
}

func TestReservationRepository_ListCompletedForUpdate(t *testing.T) {
	ctx := context.Background()
	memberID, activityID := uuid.New(), uuid.New()

	testCases := []struct {
		name        string
		rows        []sqlc.Reservations
		queryErr    error
		expectedLen int
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: rows converted",
			rows: []sqlc.Reservations{
				builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted).BuildInfra(),
				builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted).AsReviewed().BuildInfra(),
			},
			expectedLen: 2,
		},
		{
			name:        "success: none",
			rows:        []sqlc.Reservations{},
			expectedLen: 0,
		},
		{
			name:       "error: database error",
			queryErr:   errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			repo := repository.NewReservationRepository(mockQueries)

			mockQueries.EXPECT().ListCompletedReservationsForUpdate(ctx, gomock.Any(), sqlc.ListCompletedReservationsForUpdateParams{
				MemberID:   memberID,
				ActivityID: activityID,
			}).Return(tc.rows, tc.queryErr)

			got, err := repo.ListCompletedForUpdate(ctx, &mockDBTX{}, memberID, activityID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tc.expectedLen)
		})
	}
}

func TestReservationRepository_MarkReviewed(t *testing.T) {
	ctx := context.Background()
	memberID, activityID := uuid.New(), uuid.New()
	now := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	repo := repository.NewReservationRepository(mockQueries)

	mockQueries.EXPECT().MarkReservationsReviewed(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkReservationsReviewedParams) (int64, error) {
			assert.Equal(t, memberID, arg.MemberID)
			assert.Equal(t, activityID, arg.ActivityID)
			assert.Equal(t, now, arg.UpdatedAt.Time)
			return 2, nil
		})

	n, err := repo.MarkReviewed(ctx, &mockDBTX{}, memberID, activityID, now)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
