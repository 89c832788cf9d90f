package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// ReservationSvc is the slice of the coordinator the realtime commands
// need; they share it with the REST and bot surfaces.
type ReservationSvc interface {
	Reserve(ctx context.Context, caller auth.Identity, eventID string) (*domain.Ticket, error)
	CancelByEvent(ctx context.Context, caller auth.Identity, eventID string) error
}

// Command is a client-to-server message.
type Command struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type ticketCommandData struct {
	EventID string `json:"event_id"`
}

type commandResult struct {
	Action      string         `json:"action"`
	Status      string         `json:"status"`
	Kind        string         `json:"kind,omitempty"`
	Error       string         `json:"error,omitempty"`
	Reservation *domain.Ticket `json:"reservation,omitempty"`
}

// Gateway upgrades authenticated websocket connections, pushes hub
// envelopes out, and dispatches ticket commands into the coordinator.
type Gateway struct {
	hub          *Hub
	verifier     *auth.Verifier
	reservations ReservationSvc
	upgrader     websocket.Upgrader
	logger       logger.Logger
}

func NewGateway(hub *Hub, verifier *auth.Verifier, reservations ReservationSvc, logger logger.Logger) *Gateway {
	return &Gateway{
		hub:          hub,
		verifier:     verifier,
		reservations: reservations,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handle is the /ws endpoint. The credential rides in the query since
// browsers cannot set headers on websocket dials.
func (g *Gateway) Handle(c *ginext.Context) {
	identity, err := g.verifier.Verify(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ginext.H{"error": "authentication failed"})
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Error("websocket upgrade failed",
			logger.String("error", err.Error()),
		)
		return
	}

	client := NewClient(identity.UserID)
	g.hub.Register(client)

	results := make(chan commandResult)
	done := make(chan struct{})

	go g.writeLoop(conn, client, results, done)
	g.readLoop(c.Request.Context(), conn, client, identity, results, done)
}

// writeLoop is the sole writer on the connection. Hub pushes and
// command results are serialized here; gorilla connections support one
// concurrent writer and an interleaved push and result would trip its
// concurrency check.
func (g *Gateway) writeLoop(conn *websocket.Conn, client *Client, results <-chan commandResult, done chan<- struct{}) {
	defer close(done)
	defer conn.Close()

	for {
		select {
		case env, ok := <-client.Send:
			if !ok {
				return
			}
			if err := conn.WriteJSON(env); err != nil {
				return
			}
		case res := <-results:
			if err := conn.WriteJSON(res); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) readLoop(ctx context.Context, conn *websocket.Conn, client *Client, identity auth.Identity, results chan<- commandResult, done <-chan struct{}) {
	defer g.hub.Unregister(client)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}

		select {
		case results <- g.dispatch(ctx, identity, cmd):
		case <-done:
			return
		}
	}
}

func (g *Gateway) dispatch(ctx context.Context, identity auth.Identity, cmd Command) commandResult {
	switch cmd.Action {
	case "ticket:create":
		var data ticketCommandData
		if err := json.Unmarshal(cmd.Data, &data); err != nil || data.EventID == "" {
			return failure(cmd.Action, domain.ErrValidation)
		}
		ticket, err := g.reservations.Reserve(ctx, identity, data.EventID)
		if err != nil {
			res := failure(cmd.Action, err)
			var already *domain.AlreadyTicketedError
			if errors.As(err, &already) {
				res.Reservation = already.Existing
			}
			return res
		}
		return commandResult{Action: cmd.Action, Status: "ok", Reservation: ticket}

	case "ticket:cancel":
		var data ticketCommandData
		if err := json.Unmarshal(cmd.Data, &data); err != nil || data.EventID == "" {
			return failure(cmd.Action, domain.ErrValidation)
		}
		if err := g.reservations.CancelByEvent(ctx, identity, data.EventID); err != nil {
			return failure(cmd.Action, err)
		}
		return commandResult{Action: cmd.Action, Status: "ok"}

	default:
		return commandResult{
			Action: cmd.Action,
			Status: "error",
			Kind:   "unknown_action",
			Error:  "unknown action",
		}
	}
}

func failure(action string, err error) commandResult {
	kind := domain.ErrorKind(err)
	msg := err.Error()
	if kind == "internal" {
		msg = "internal server error"
	}
	return commandResult{Action: action, Status: "error", Kind: kind, Error: msg}
}
