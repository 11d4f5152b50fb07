package convert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/udisondev/powerconv/internal/convert"
	"github.com/udisondev/powerconv/internal/convert/mock"
	"github.com/udisondev/powerconv/internal/render"
	"github.com/udisondev/powerconv/internal/testutil"
)

func TestRun_SinkLifecycle(t *testing.T) {
	cfg := testConfig(t)
	testutil.WriteFightingPool(t, cfg.RawDataDir)

	ctrl := gomock.NewController(t)
	sink := mock.NewMockSink(ctrl)

	var runID uuid.UUID
	gomock.InOrder(
		sink.EXPECT().StartRun(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID, _ time.Time) error {
				runID = id
				return nil
			}),
		sink.EXPECT().SaveSet(gomock.Any(), gomock.Any(), render.KindPool, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID, _ render.Kind, set *convert.SetRecord) error {
				assert.Equal(t, runID, id)
				assert.Equal(t, "fighting", set.ID)
				assert.Len(t, set.Powers, 3)
				return nil
			}),
		sink.EXPECT().FinishRun(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, report convert.BatchReport) error {
				assert.Equal(t, runID, report.RunID)
				assert.Equal(t, 1, report.Succeeded)
				return nil
			}),
	)

	c := convert.New(2, convert.WithSink(sink))
	report, err := c.Run(testutil.ContextWithTimeout(t, 5*time.Second), convert.PoolSpecs(cfg, []string{"fighting"}))
	require.NoError(t, err)
	assert.Equal(t, runID, report.RunID)
	assert.Equal(t, 1, report.Total)
}

func TestRun_SinkSaveFailureFailsSet(t *testing.T) {
	cfg := testConfig(t)
	testutil.WriteFightingPool(t, cfg.RawDataDir)

	ctrl := gomock.NewController(t)
	sink := mock.NewMockSink(ctrl)
	sink.EXPECT().StartRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	sink.EXPECT().SaveSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	sink.EXPECT().FinishRun(gomock.Any(), gomock.Any()).Return(nil)

	c := convert.New(2, convert.WithSink(sink))
	report, err := c.Run(testutil.ContextWithTimeout(t, 5*time.Second), convert.PoolSpecs(cfg, []string{"fighting"}))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.ErrorContains(t, report.Failures[0].Err, "connection refused")
}

func TestRun_StartRunFailureAborts(t *testing.T) {
	cfg := testConfig(t)

	ctrl := gomock.NewController(t)
	sink := mock.NewMockSink(ctrl)
	sink.EXPECT().StartRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no database"))

	c := convert.New(1, convert.WithSink(sink))
	_, err := c.Run(testutil.ContextWithTimeout(t, 5*time.Second), convert.PoolSpecs(cfg, []string{"fighting"}))
	assert.ErrorContains(t, err, "starting run")
}

func TestRun_CancelledBeforeFirstSet(t *testing.T) {
	cfg := testConfig(t)
	testutil.WriteFightingPool(t, cfg.RawDataDir)

	ctx, cancel := testutil.ContextWithCancel(t)
	cancel()

	report, err := convert.New(1).Run(ctx, convert.PoolSpecs(cfg, []string{"fighting", "speed"}))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
}
