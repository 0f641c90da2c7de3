package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatx/calculator"
	"heatx/metrics"
	"heatx/model"
)

func airWaterCase() model.Case {
	return model.Case{
		Name: "air-water",
		Duty: 50000,
		Hot:  model.StreamCase{Fluid: "air", TIn: 450, TOut: 350, Density: 1.2, SpecificHeat: 1005},
		Cold: model.StreamCase{Fluid: "water", TIn: 290, TOut: 310},
		Geometry: model.GeometryCase{
			PipeInnerDiameter:    0.026,
			PipeOuterDiameter:    0.03,
			AnnulusInnerDiameter: 0.05,
			WallConductivity:     16,
		},
	}
}

func newTestHub(t *testing.T) *Hub {
	sizer, err := calculator.NewSizer(calculator.DefaultConfig())
	require.NoError(t, err)
	return NewHub(sizer, metrics.New(prometheus.NewRegistry()), 2)
}

func request(t *testing.T, typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return model.Msg{Type: typ, Content: string(data)}
}

func TestHubSize(t *testing.T) {
	h := newTestHub(t)
	reply := h.handle(context.Background(), request(t, model.MsgSize, airWaterCase()))
	require.Equal(t, model.MsgSized, reply.Type, reply.Content)

	var res calculator.ExchangerSizingResult
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &res))
	assert.Greater(t, res.Length, 0.0)
	assert.Greater(t, res.Uo, 0.0)
}

func TestHubSizeRejectsBadGeometry(t *testing.T) {
	h := newTestHub(t)
	c := airWaterCase()
	c.Geometry.AnnulusInnerDiameter = c.Geometry.PipeOuterDiameter
	reply := h.handle(context.Background(), request(t, model.MsgSize, c))
	assert.Equal(t, model.MsgError, reply.Type)
	assert.Contains(t, reply.Content, "annulus_inner_diameter")
}

func TestHubSweepAndHistory(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	reply := h.handle(ctx, request(t, model.MsgSweep, model.SweepCase{
		Case: airWaterCase(), DutyFrom: 10000, DutyTo: 50000, Steps: 5,
	}))
	require.Equal(t, model.MsgSwept, reply.Type, reply.Content)
	var points []calculator.SweepPoint
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &points))
	require.Len(t, points, 5)
	assert.Equal(t, 10000.0, points[0].Duty)
	assert.Equal(t, 50000.0, points[4].Duty)

	// history keeps the two most recent replies
	h.handle(ctx, request(t, model.MsgSize, airWaterCase()))
	h.handle(ctx, request(t, model.MsgSize, airWaterCase()))
	reply = h.handle(ctx, model.Msg{Type: model.MsgHistory})
	var past []model.Msg
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &past))
	require.Len(t, past, 2)
	assert.Equal(t, model.MsgSized, past[0].Type)
	assert.Equal(t, model.MsgSized, past[1].Type)
}

func TestHubSweepRejectsTooManySteps(t *testing.T) {
	h := newTestHub(t)
	reply := h.handle(context.Background(), request(t, model.MsgSweep, model.SweepCase{
		Case: airWaterCase(), DutyFrom: 10000, DutyTo: 50000, Steps: 1 << 62,
	}))
	assert.Equal(t, model.MsgError, reply.Type)
	assert.Contains(t, reply.Content, "exceeds the limit")
	assert.Equal(t, 0, h.history.Size())
}

func TestHubUnknownType(t *testing.T) {
	h := newTestHub(t)
	reply := h.handle(context.Background(), model.Msg{Type: "start"})
	assert.Equal(t, model.MsgError, reply.Type)
}

func TestServeWsRoundTrip(t *testing.T) {
	sizer, err := calculator.NewSizer(calculator.DefaultConfig())
	require.NoError(t, err)
	s := NewServer(DefaultConfig(), websocket.Upgrader{}, sizer)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(request(t, model.MsgSize, airWaterCase())))
	var reply model.Msg
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, model.MsgSized, reply.Type, reply.Content)

	resp, err := ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}
