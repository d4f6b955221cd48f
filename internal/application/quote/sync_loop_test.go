package quote_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/quote"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/session"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
	"github.com/jhoicas/asesor-cotizaciones/internal/testutil"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

type fixture struct {
	board    *quote.Board
	gateway  *testutil.FakeGateway
	session  *session.Session
	notifier *testutil.CountingNotifier
	loop     *quote.SyncLoop
	ctrl     *quote.Controller
}

func newFixture(t *testing.T, interval time.Duration, withToken bool) *fixture {
	t.Helper()
	f := &fixture{
		board:    quote.NewBoard(),
		gateway:  testutil.NewFakeGateway(),
		session:  session.New(testutil.NewMemoryStore(), logger.Nop()),
		notifier: &testutil.CountingNotifier{},
	}
	if withToken {
		require.NoError(t, f.session.Begin(context.Background(), "tok"))
	}
	f.loop = quote.NewSyncLoop(f.board, f.gateway, f.session, f.notifier, interval, logger.Nop())
	f.ctrl = quote.NewController(f.board, f.gateway, f.session, logger.Nop())
	f.session.OnEnd(f.loop.Stop)
	t.Cleanup(func() {
		f.loop.Stop()
		f.loop.Wait()
	})
	return f
}

func TestSyncLoop_SinTokenNoArranca(t *testing.T) {
	f := newFixture(t, time.Hour, false)
	var calls atomic.Int32
	f.gateway.ListFunc = func(context.Context, string) ([]entity.Quote, error) {
		calls.Add(1)
		return nil, nil
	}

	err := f.loop.Start(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoToken)
	assert.False(t, f.loop.Running())
	assert.Equal(t, quote.MsgNoToken, f.board.Snapshot().List.Err)
	assert.False(t, f.board.Snapshot().List.Loading)
	assert.Equal(t, int32(0), calls.Load())
}

func TestSyncLoop_TresYLuegoTresDistintas(t *testing.T) {
	f := newFixture(t, time.Hour, true)
	ctx := context.Background()

	f.gateway.SetQuotes(mkQuotes(1, 3))
	f.loop.Poll(ctx)
	require.Equal(t, 1, f.notifier.CallCount())

	f.gateway.SetQuotes(mkQuotes(50, 3))
	out := f.loop.Poll(ctx)
	assert.False(t, out.Replaced)
	assert.Equal(t, []int64{3, 2, 1}, ids(f.board.Snapshot().Quotes))
	assert.Equal(t, 1, f.notifier.CallCount(), "sin notificación si el tamaño no cambia")
}

func TestSyncLoop_TresYLuegoCinco(t *testing.T) {
	f := newFixture(t, time.Hour, true)
	ctx := context.Background()

	f.gateway.SetQuotes(mkQuotes(1, 3))
	f.loop.Poll(ctx)
	before := f.notifier.CallCount()

	f.gateway.SetQuotes(mkQuotes(1, 5))
	out := f.loop.Poll(ctx)
	assert.True(t, out.Replaced)
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids(f.board.Snapshot().Quotes))
	assert.Equal(t, before+1, f.notifier.CallCount(), "exactamente una notificación")
}

func TestSyncLoop_ArrancaConsultaYRepite(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond, true)
	var calls atomic.Int32
	f.gateway.ListFunc = func(_ context.Context, token string) ([]entity.Quote, error) {
		assert.Equal(t, "tok", token)
		calls.Add(1)
		return mkQuotes(1, 2), nil
	}

	require.NoError(t, f.loop.Start(context.Background()))
	assert.True(t, f.loop.Running())
	require.NoError(t, f.loop.Start(context.Background()), "segundo Start no hace nada")

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, f.board.Snapshot().Quotes, 2)

	f.loop.Stop()
	assert.False(t, f.loop.Running())
}

func TestSyncLoop_RespuestaTrasStopEsIgnorada(t *testing.T) {
	f := newFixture(t, time.Hour, true)
	started := make(chan struct{})
	release := make(chan struct{})
	f.gateway.ListFunc = func(context.Context, string) ([]entity.Quote, error) {
		close(started)
		<-release
		return mkQuotes(1, 3), nil
	}

	require.NoError(t, f.loop.Start(context.Background()))
	<-started
	f.loop.Stop()
	close(release)
	f.loop.Wait()

	assert.Empty(t, f.board.Snapshot().Quotes)
	assert.Equal(t, 0, f.notifier.CallCount())
}

func TestSyncLoop_GanaLaSecuenciaMasAlta(t *testing.T) {
	f := newFixture(t, time.Hour, true)
	ctx := context.Background()
	release := make(chan struct{})
	var n atomic.Int32
	f.gateway.ListFunc = func(context.Context, string) ([]entity.Quote, error) {
		if n.Add(1) == 1 {
			<-release // la primera consulta responde la última
			return mkQuotes(1, 2), nil
		}
		return mkQuotes(1, 4), nil
	}

	first := make(chan quote.FetchOutcome)
	go func() { first <- f.loop.Poll(ctx) }()
	require.Eventually(t, func() bool { return n.Load() == 1 }, time.Second, time.Millisecond)

	second := f.loop.Poll(ctx)
	close(release)
	late := <-first

	assert.True(t, second.Applied)
	assert.False(t, late.Applied)
	assert.Len(t, f.board.Snapshot().Quotes, 4)
}

func TestSyncLoop_LogoutDetieneYNoRearranca(t *testing.T) {
	f := newFixture(t, time.Hour, true)
	ctx := context.Background()
	f.gateway.SetQuotes(mkQuotes(1, 1))

	require.NoError(t, f.loop.Start(ctx))
	require.NoError(t, f.session.End(ctx))
	assert.False(t, f.loop.Running())

	err := f.loop.Start(ctx)
	assert.ErrorIs(t, err, domain.ErrNoToken)
	assert.False(t, f.loop.Running())
}
