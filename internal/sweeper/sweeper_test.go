package sweeper

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-decision-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweeper_RunsOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := mocks.NewMockDecisionService(ctrl)
	done := make(chan struct{})
	service.EXPECT().SweepStale(gomock.Any()).
		DoAndReturn(func(ctx any) (int, error) {
			close(done)
			return 0, nil
		})

	s := New(service)
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not run on start")
	}
}

func TestSweeper_StartIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := mocks.NewMockDecisionService(ctrl)
	// A second Start must not spawn a second loop, so exactly one sweep.
	calls := make(chan struct{}, 2)
	service.EXPECT().SweepStale(gomock.Any()).
		DoAndReturn(func(ctx any) (int, error) {
			calls <- struct{}{}
			return 0, nil
		}).MaxTimes(1)

	s := New(service)
	s.Start()
	s.Start()
	defer s.Stop()

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not run on start")
	}

	select {
	case <-calls:
		t.Fatal("second Start spawned another sweep loop")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSweeper_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := New(mocks.NewMockDecisionService(ctrl))
	require.NotPanics(t, func() { s.Stop() })
}
