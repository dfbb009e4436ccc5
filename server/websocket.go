package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const localGame = "game"

// upgrade only lets websocket handshakes for existing games through.
func (s *Server) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	c.Locals(localGame, g)
	return c.Next()
}

func (s *Server) handleConnection(c *websocket.Conn) {
	g, ok := c.Locals(localGame).(*Game)
	if !ok {
		_ = c.Close()
		return
	}

	g.register(c)
	defer g.unregister(c)
	if err := g.send(c, Message{Type: MessageTypeState, Payload: mustJSON(g.State())}); err != nil {
		log.Println("websocket write error:", err)
		return
	}

	for {
		messageType, raw, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := s.handleMessage(g, raw); err != nil {
			_, resp := newErrorResponse(err)
			if err := g.send(c, Message{Type: MessageTypeError, Payload: mustJSON(resp)}); err != nil {
				log.Println("websocket write error:", err)
				return
			}
		}
	}
}

func (s *Server) handleMessage(g *Game, raw []byte) error {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	switch msg.Type {
	case MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("%w: %v", errBadRequest, err)
		}
		from, to, err := req.squares()
		if err != nil {
			return err
		}
		_, err = g.Move(from, to)
		return err
	default:
		return fmt.Errorf("%w: unknown message type %q", errBadRequest, msg.Type)
	}
}
