//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"coach-booking-api/internal/infra"
	"coach-booking-api/internal/infra/readstore"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	readstoremock "coach-booking-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationReadStore_FindByRecipient(t *testing.T) {
	ctx := context.Background()
	recipientID := uuid.New()
	relatedID := uuid.New()

	testCases := []struct {
		name       string
		unreadOnly bool
		rows       []sqlc.Notifications
		queryErr   error
		expectLen  int
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: related entity carried through",
			rows: []sqlc.Notifications{
				{
					ID:                uuid.New(),
					Type:              "new_reservation",
					RelatedEntityType: pgtype.Text{String: "reservation", Valid: true},
					RelatedEntityID:   pgtype.UUID{Bytes: relatedID, Valid: true},
				},
				{ID: uuid.New(), Type: "contact", Read: true},
			},
			expectLen: 2,
		},
		{
			name:       "success: unread filter forwarded",
			unreadOnly: true,
			rows:       []sqlc.Notifications{},
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
			mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
			store := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().ListNotifications(ctx, gomock.Any(), sqlc.ListNotificationsParams{
				RecipientID: recipientID,
				UnreadOnly:  tc.unreadOnly,
				RowLimit:    50,
			}).Return(tc.rows, tc.queryErr)

			views, err := store.FindByRecipient(ctx, recipientID, tc.unreadOnly, 50)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			require.Len(t, views, tc.expectLen)
			if tc.expectLen > 0 {
				require.NotNil(t, views[0].RelatedEntityID)
				assert.Equal(t, relatedID, *views[0].RelatedEntityID)
				assert.Equal(t, "reservation", *views[0].RelatedEntityType)
				assert.Nil(t, views[1].RelatedEntityID)
			}
		})
	}
}

func TestNotificationReadStore_CountUnread(t *testing.T) {
	ctx := context.Background()
	recipientID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
	store := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().CountUnreadNotifications(ctx, gomock.Any(), recipientID).Return(int64(3), nil)

	n, err := store.CountUnread(ctx, recipientID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
