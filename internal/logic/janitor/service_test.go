package janitor_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/skillcoder/kbs-deployer/internal/infra/cronparser"
	"github.com/skillcoder/kbs-deployer/internal/logic/janitor"
	"github.com/skillcoder/kbs-deployer/internal/logic/janitor/mocks"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func cluster(name string, age time.Duration) janitor.Cluster {
	return janitor.Cluster{
		ID:            "/subscriptions/sub/resourceGroups/kataCI-" + name + "/providers/Microsoft.ContainerService/managedClusters/" + name,
		Name:          name,
		ResourceGroup: "kataCI-" + name,
		CreatedAt:     now.Add(-age),
	}
}

func newService(inv janitor.Inventory, dryRun bool) *janitor.Service {
	return janitor.New(slog.Default(), janitor.Config{
		CleanupAfter: 24 * time.Hour,
		DryRun:       dryRun,
	}, inv, nil)
}

func TestService_RunOnce(t *testing.T) {
	t.Parallel()

	alone := cluster("alone", 48*time.Hour)
	shared := cluster("shared", 25*time.Hour)
	young := cluster("young", time.Hour)
	unknown := janitor.Cluster{ID: "/x", Name: "unknown", ResourceGroup: "g"}

	inv := mocks.NewMockInventory(t)
	inv.EXPECT().ManagedClustersQuery(mock.Anything).
		Return([]janitor.Cluster{alone, shared, young, unknown}, nil).Once()
	inv.EXPECT().GroupResourceCountQuery(mock.Anything, alone.ResourceGroup).Return(1, nil).Once()
	inv.EXPECT().GroupResourceCountQuery(mock.Anything, shared.ResourceGroup).Return(3, nil).Once()
	inv.EXPECT().DeleteGroupCommand(mock.Anything, alone.ResourceGroup).Return(nil).Once()
	inv.EXPECT().DeleteResourceCommand(mock.Anything, shared.ID).Return(nil).Once()

	svc := newService(inv, false)

	deleted, err := svc.RunOnce(t.Context(), now)
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	last := svc.LastRun()
	require.NotNil(t, last)
	require.Equal(t, now, last.StartedAt)
	require.Equal(t, 2, last.Expired)
	require.NoError(t, svc.Ping(t.Context()))
}

func TestService_RunOnce_DryRun(t *testing.T) {
	t.Parallel()

	old := cluster("old", 30*time.Hour)

	inv := mocks.NewMockInventory(t)
	inv.EXPECT().ManagedClustersQuery(mock.Anything).Return([]janitor.Cluster{old}, nil).Once()
	inv.EXPECT().GroupResourceCountQuery(mock.Anything, old.ResourceGroup).Return(1, nil).Once()

	deleted, err := newService(inv, true).RunOnce(t.Context(), now)
	require.NoError(t, err)
	require.Equal(t, 1, deleted)
}

func TestService_RunOnce_Failures(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	t.Run("list failure", func(t *testing.T) {
		t.Parallel()

		inv := mocks.NewMockInventory(t)
		inv.EXPECT().ManagedClustersQuery(mock.Anything).Return(nil, errBoom).Once()

		svc := newService(inv, false)

		deleted, err := svc.RunOnce(t.Context(), now)
		require.ErrorIs(t, err, janitor.ErrList)
		require.ErrorIs(t, err, errBoom)
		require.Zero(t, deleted)
		require.ErrorIs(t, svc.Ping(t.Context()), errBoom)
	})

	t.Run("one deletion fails, the others still run", func(t *testing.T) {
		t.Parallel()

		bad := cluster("bad", 48*time.Hour)
		good := cluster("good", 48*time.Hour)
		uncountable := cluster("uncountable", 48*time.Hour)

		inv := mocks.NewMockInventory(t)
		inv.EXPECT().ManagedClustersQuery(mock.Anything).
			Return([]janitor.Cluster{bad, good, uncountable}, nil).Once()
		inv.EXPECT().GroupResourceCountQuery(mock.Anything, bad.ResourceGroup).Return(1, nil).Once()
		inv.EXPECT().GroupResourceCountQuery(mock.Anything, good.ResourceGroup).Return(2, nil).Once()
		inv.EXPECT().GroupResourceCountQuery(mock.Anything, uncountable.ResourceGroup).Return(0, errBoom).Once()
		inv.EXPECT().DeleteGroupCommand(mock.Anything, bad.ResourceGroup).Return(errBoom).Once()
		inv.EXPECT().DeleteResourceCommand(mock.Anything, good.ID).Return(nil).Once()

		deleted, err := newService(inv, false).RunOnce(t.Context(), now)
		require.ErrorIs(t, err, janitor.ErrRemove)
		require.ErrorIs(t, err, errBoom)
		require.Contains(t, err.Error(), "cluster bad")
		require.Contains(t, err.Error(), "cluster uncountable")
		require.Equal(t, 1, deleted)
	})
}

func TestService_Ping(t *testing.T) {
	t.Parallel()

	svc := newService(mocks.NewMockInventory(t), false)

	require.Equal(t, "janitor", svc.Name())
	require.False(t, svc.PingerCritical())
	require.ErrorIs(t, svc.Ping(t.Context()), janitor.ErrNoRunYet)
	require.Nil(t, svc.LastRun())
}

func TestService_RunScheduled(t *testing.T) {
	t.Parallel()

	schedule, err := cronparser.Parse("0 * * * *", "UTC")
	require.NoError(t, err)

	clk := clocktesting.NewFakeClock(now.Add(-30 * time.Minute))

	var runs atomic.Int32

	ran := make(chan struct{}, 1)

	inv := mocks.NewMockInventory(t)
	inv.EXPECT().ManagedClustersQuery(mock.Anything).RunAndReturn(func(context.Context) ([]janitor.Cluster, error) {
		runs.Add(1)
		ran <- struct{}{}

		return nil, nil
	}).Once()

	svc := janitor.New(slog.Default(), janitor.Config{CleanupAfter: time.Hour}, inv, clk)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)

	go func() { done <- svc.RunScheduled(ctx, schedule) }()

	require.Eventually(t, clk.HasWaiters, time.Second, time.Millisecond)
	require.Zero(t, runs.Load())

	clk.Step(30 * time.Minute)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("scheduled run did not happen")
	}

	require.Eventually(t, clk.HasWaiters, time.Second, time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RunScheduled did not return after cancel")
	}

	require.Equal(t, int32(1), runs.Load())
}
