package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"heatx/calculator"
	"heatx/deque"
	"heatx/metrics"
	"heatx/model"
)

// Hub serves one websocket client: requests arrive on msg, replies leave on reply.
type Hub struct {
	sizer   *calculator.Sizer
	metrics *metrics.Metrics
	conn    *websocket.Conn
	history *deque.ArrDeque[model.Msg]

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub(sizer *calculator.Sizer, m *metrics.Metrics, historySize int) *Hub {
	return &Hub{
		sizer:   sizer,
		metrics: m,
		history: deque.NewArrDeque[model.Msg](historySize),
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse(ctx context.Context) {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("write reply failed")
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleRequest(ctx context.Context) {
	for {
		select {
		case msg := <-h.msg:
			reply := h.handle(ctx, msg)
			select {
			case h.reply <- reply:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// handle answers one request. Only handleRequest calls it, so history needs no lock.
func (h *Hub) handle(ctx context.Context, msg model.Msg) model.Msg {
	switch msg.Type {
	case model.MsgSize:
		reply, err := h.size(msg.Content)
		if err != nil {
			return errorMsg(err)
		}
		h.history.Push(reply)
		return reply
	case model.MsgSweep:
		reply, err := h.sweep(ctx, msg.Content)
		if err != nil {
			return errorMsg(err)
		}
		h.history.Push(reply)
		return reply
	case model.MsgHistory:
		past := make([]model.Msg, 0, h.history.Size())
		h.history.Traverse(func(_ int, m model.Msg) {
			past = append(past, m)
		})
		data, err := json.Marshal(past)
		if err != nil {
			return errorMsg(err)
		}
		return model.Msg{Type: model.MsgHistory, Content: string(data)}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return errorMsg(fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (h *Hub) size(content string) (model.Msg, error) {
	var c model.Case
	if err := json.Unmarshal([]byte(content), &c); err != nil {
		return model.Msg{}, fmt.Errorf("decoding case: %w", err)
	}
	in, err := calculator.NewInput(c)
	if err != nil {
		return model.Msg{}, err
	}
	res, err := h.sizer.Size(in)
	if h.metrics != nil {
		h.metrics.ObserveSizing(res, err)
	}
	if err != nil {
		return model.Msg{}, err
	}
	data, err := json.Marshal(res)
	if err != nil {
		return model.Msg{}, err
	}
	log.WithFields(log.Fields{
		"case":   c.Name,
		"length": res.Length,
		"uo":     res.Uo,
	}).Info("case sized")
	return model.Msg{Type: model.MsgSized, Content: string(data)}, nil
}

func (h *Hub) sweep(ctx context.Context, content string) (model.Msg, error) {
	var sc model.SweepCase
	if err := json.Unmarshal([]byte(content), &sc); err != nil {
		return model.Msg{}, fmt.Errorf("decoding sweep: %w", err)
	}
	inputs, err := calculator.NewSweep(sc, h.sizer.Config().MaxSteps)
	if err != nil {
		return model.Msg{}, err
	}
	points, err := calculator.Sweep(ctx, h.sizer, inputs, h.sizer.Config().Workers)
	if err != nil {
		return model.Msg{}, err
	}
	if h.metrics != nil {
		h.metrics.ObserveSweep(points)
	}
	data, err := json.Marshal(points)
	if err != nil {
		return model.Msg{}, err
	}
	return model.Msg{Type: model.MsgSwept, Content: string(data)}, nil
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.MsgError, Content: err.Error()}
}
