// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/session-foundation/configsync/internal/cache"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/mock"
	"github.com/session-foundation/configsync/models"
)

const testOwner = models.Owner("05deadbeef")

func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*syncService, *mock.MockCoordinator, *mock.MockRelayAdapter) {
	t.Helper()
	coord := mock.NewMockCoordinator(ctrl)
	relay := mock.NewMockRelayAdapter(ctrl)
	svc := NewSyncService(coord, relay, logger.Nop()).(*syncService)
	return svc, coord, relay
}

func TestSyncService_FullSync_NoOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSyncSvc(t, ctrl)
	err := svc.FullSync(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoOwnerProvided)
}

func TestSyncService_FullSync_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(nil, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).Return(models.PendingChanges{}, nil),
	)

	require.NoError(t, svc.FullSync(ctx, testOwner))
}

func TestSyncService_FullSync_MergesAndAdvancesWatermark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	batch := []models.IncomingMessage{
		{Payload: []byte(`{}`), Hash: "h1", SentAt: 100, Type: models.UserProfile},
		{Payload: []byte(`{}`), Hash: "h2", SentAt: 150, Type: models.Contacts},
	}

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(batch, nil),
		coord.EXPECT().MergeIncoming(gomock.Any(), testOwner, batch).
			Return(models.MergeResult{Incorporated: []string{"h1", "h2"}, MaxTimestamp: 150}, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).Return(models.PendingChanges{}, nil),
	)
	require.NoError(t, svc.FullSync(ctx, testOwner))

	// The next round fetches from the largest incorporated timestamp, not
	// past it, so a message stored later in the same second is still seen.
	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(150)).Return(nil, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).Return(models.PendingChanges{}, nil),
	)
	require.NoError(t, svc.FullSync(ctx, testOwner))
}

func TestSyncService_FullSync_SameTimestampMessageNotSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	first := []models.IncomingMessage{
		{Payload: []byte(`{}`), Hash: "h1", SentAt: 100, Type: models.UserProfile},
	}
	// Stored on the relay after the first fetch but within the same second.
	late := []models.IncomingMessage{
		first[0],
		{Payload: []byte(`{}`), Hash: "h2", SentAt: 100, Type: models.UserProfile},
	}

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(first, nil),
		coord.EXPECT().MergeIncoming(gomock.Any(), testOwner, first).
			Return(models.MergeResult{Incorporated: []string{"h1"}, MaxTimestamp: 100}, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).Return(models.PendingChanges{}, nil),

		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(100)).Return(late, nil),
		coord.EXPECT().MergeIncoming(gomock.Any(), testOwner, late).
			Return(models.MergeResult{Incorporated: []string{"h1", "h2"}, MaxTimestamp: 100}, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).Return(models.PendingChanges{}, nil),
	)

	require.NoError(t, svc.FullSync(ctx, testOwner))
	require.NoError(t, svc.FullSync(ctx, testOwner))
}

func TestSyncService_FullSync_PushConfirmAndGC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	push := models.PendingPush{Type: models.Contacts, Payload: []byte(`{"c":1}`), Seqno: 2}
	key := models.Key{Type: models.Contacts, Owner: testOwner}

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(nil, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).
			Return(models.PendingChanges{Pushes: []models.PendingPush{push}}, nil),
		relay.EXPECT().SendPush(gomock.Any(), testOwner, push).
			Return(models.StoreResponse{Hash: "new-hash", AcceptedAt: 200}, nil),
		coord.EXPECT().ConfirmPushed(gomock.Any(), key, int64(2), "new-hash").Return(nil),
		// Confirmation retired the previously confirmed hash.
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).
			Return(models.PendingChanges{ObsoleteHashes: []string{"old-hash"}}, nil),
		relay.EXPECT().DeleteMessages(gomock.Any(), testOwner, []string{"old-hash"}).Return(nil),
	)

	// Pruning visits every document type; only contacts is loaded.
	for _, typ := range models.AllDocumentTypes() {
		k := models.Key{Type: typ, Owner: testOwner}
		if typ == models.Contacts {
			coord.EXPECT().PruneObsolete(gomock.Any(), k, []string{"old-hash"}).Return(nil)
			continue
		}
		coord.EXPECT().PruneObsolete(gomock.Any(), k, []string{"old-hash"}).Return(cache.ErrObjectNotLoaded)
	}

	require.NoError(t, svc.FullSync(ctx, testOwner))
}

func TestSyncService_FullSync_ObsoleteWithoutPushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(nil, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).
			Return(models.PendingChanges{ObsoleteHashes: []string{"stale"}}, nil),
		relay.EXPECT().DeleteMessages(gomock.Any(), testOwner, []string{"stale"}).Return(nil),
	)
	for _, typ := range models.AllDocumentTypes() {
		k := models.Key{Type: typ, Owner: testOwner}
		coord.EXPECT().PruneObsolete(gomock.Any(), k, []string{"stale"}).Return(cache.ErrObjectNotLoaded)
	}

	require.NoError(t, svc.FullSync(ctx, testOwner))
}

func TestSyncService_FullSync_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, relay := newTestSyncSvc(t, ctrl)

	wantErr := errors.New("relay unreachable")
	relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(nil, wantErr)

	err := svc.FullSync(context.Background(), testOwner)
	assert.ErrorIs(t, err, wantErr)
}

func TestSyncService_FullSync_MergeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)

	batch := []models.IncomingMessage{{Payload: []byte(`{}`), Hash: "h1", SentAt: 100, Type: models.UserProfile}}
	wantErr := errors.New("merge broke")

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(batch, nil),
		coord.EXPECT().MergeIncoming(gomock.Any(), testOwner, batch).Return(models.MergeResult{}, wantErr),
	)

	err := svc.FullSync(context.Background(), testOwner)
	assert.ErrorIs(t, err, wantErr)
}

func TestSyncService_FullSync_PushError_NoConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)

	push := models.PendingPush{Type: models.UserProfile, Payload: []byte(`{}`), Seqno: 1}
	wantErr := errors.New("store rejected")

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(nil, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).
			Return(models.PendingChanges{Pushes: []models.PendingPush{push}}, nil),
		relay.EXPECT().SendPush(gomock.Any(), testOwner, push).Return(models.StoreResponse{}, wantErr),
	)

	err := svc.FullSync(context.Background(), testOwner)
	assert.ErrorIs(t, err, wantErr)
}

func TestSyncService_FullSync_WatermarkNotAdvancedOnEmptyMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, coord, relay := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	// Every message malformed: nothing incorporated, MaxTimestamp zero.
	batch := []models.IncomingMessage{{Payload: []byte(`garbage`), Hash: "h1", SentAt: 100, Type: models.UserProfile}}

	gomock.InOrder(
		relay.EXPECT().FetchIncoming(gomock.Any(), testOwner, int64(0)).Return(batch, nil),
		coord.EXPECT().MergeIncoming(gomock.Any(), testOwner, batch).Return(models.MergeResult{}, nil),
		coord.EXPECT().PendingChanges(gomock.Any(), testOwner).Return(models.PendingChanges{}, nil),
	)
	require.NoError(t, svc.FullSync(ctx, testOwner))

	assert.Equal(t, int64(0), svc.watermark(testOwner))
}
