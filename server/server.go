package server

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/daystram/chesstree/board"
	"github.com/daystram/chesstree/position"
)

var errBadRequest = errors.New("bad request")

type Server struct {
	app   *fiber.App
	games *GameManager
}

type serverConfig struct {
	allowOrigins string
	logOutput    io.Writer
	logger       func(...any)
}

type ServerOption func(*serverConfig)

func WithAllowOrigins(origins string) ServerOption {
	return func(cfg *serverConfig) {
		cfg.allowOrigins = origins
	}
}

// WithLogOutput sets where request logs are written.
func WithLogOutput(w io.Writer) ServerOption {
	return func(cfg *serverConfig) {
		cfg.logOutput = w
	}
}

// WithLogger sets the logger handed to every board created by the server.
func WithLogger(logger func(...any)) ServerOption {
	return func(cfg *serverConfig) {
		cfg.logger = logger
	}
}

func New(opts ...ServerOption) *Server {
	cfg := &serverConfig{
		allowOrigins: "*",
		logOutput:    os.Stdout,
		logger:       board.DefaultLogger,
	}
	for _, f := range opts {
		f(cfg)
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		games: NewGameManager(cfg.logger),
	}
	s.app.Use(logger.New(logger.Config{
		Output: cfg.logOutput,
	}))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	api := s.app.Group("/api/game")
	api.Post("/", s.createGame)
	api.Get("/:id", s.getGame)
	api.Get("/:id/moves", s.getMoves)
	api.Post("/:id/move", s.postMove)
	api.Delete("/:id", s.deleteGame)

	s.app.Get("/ws/game/:id", s.upgrade, websocket.New(s.handleConnection))
	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Games() *GameManager {
	return s.games
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) != 0 {
		if err := c.BodyParser(&req); err != nil {
			return s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		}
	}
	g := s.games.Create(req.Setup, req.Turn)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"game_id": g.ID,
	})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(g.State())
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getMoves(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var pos *position.Pos
	if c.Query("col") != "" || c.Query("row") != "" {
		p, ok := PosJSON{Col: c.QueryInt("col", -1), Row: c.QueryInt("row", -1)}.Pos()
		if !ok {
			return s.fail(c, fmt.Errorf("%w: square out of range", errBadRequest))
		}
		pos = &p
	}
	return c.JSON(g.Moves(pos))
}

func (s *Server) postMove(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}
	from, to, err := req.squares()
	if err != nil {
		return s.fail(c, err)
	}
	st, err := g.Move(from, to)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(st)
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	code, resp := newErrorResponse(err)
	return c.Status(code).JSON(resp)
}

func (r MoveRequest) squares() (position.Pos, position.Pos, error) {
	from, ok := r.From.Pos()
	if !ok {
		return position.Pos{}, position.Pos{}, fmt.Errorf("%w: origin out of range", errBadRequest)
	}
	to, ok := r.To.Pos()
	if !ok {
		return position.Pos{}, position.Pos{}, fmt.Errorf("%w: destination out of range", errBadRequest)
	}
	return from, to, nil
}
