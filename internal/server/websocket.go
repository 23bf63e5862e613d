package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/config"
	"github.com/openduel/duel-server-go/internal/game"
	"github.com/openduel/duel-server-go/internal/room"
)

// safeConn serializes writes. Room broadcasts and unicast rejections come
// from different goroutines and gorilla allows only one concurrent writer.
type safeConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *safeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *safeConn) Close() error {
	return c.conn.Close()
}

// Server exposes the rooms over WebSocket: /join upgrades and seats a
// player, /new-room registers a fresh room over plain HTTP.
type Server struct {
	cfg      config.ServerConfig
	rooms    *room.Manager
	logger   *zap.Logger
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

// New creates a server over the given room registry.
func New(cfg config.ServerConfig, rooms *room.Manager, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		rooms:  rooms,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/join", s.handleJoin)
	mux.HandleFunc("/new-room", s.handleNewRoom)

	s.httpSrv = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return s
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting WebSocket server", zap.String("address", s.cfg.Address))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// handleNewRoom registers a fresh room and returns its identifier.
func (s *Server) handleNewRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	controller := s.rooms.Create()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"room_id": controller.ID()}); err != nil {
		s.logger.Warn("failed to write new-room response", zap.Error(err))
	}
}

// handleJoin upgrades the connection and seats the player in the requested
// room, then pumps inbound frames until the socket drops.
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		roomID = s.cfg.DefaultRoomID
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	controller, ok := s.rooms.Get(roomID)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	conn := &safeConn{conn: wsConn}

	playerID, err := controller.Join(name, conn)
	if err != nil {
		s.writeError(conn, "ROOM_FULL", err.Error())
		conn.Close()
		return
	}

	s.logger.Info("connection joined",
		zap.String("room_id", roomID),
		zap.String("player_id", playerID),
		zap.String("remote_addr", r.RemoteAddr),
	)

	go s.readLoop(controller, playerID, conn)
}

// readLoop handles one player's inbound frames. Any read error tears the
// player down; action rejections are unicast back and never end the loop.
func (s *Server) readLoop(controller *room.Controller, playerID string, conn *safeConn) {
	defer conn.Close()

	for {
		_, raw, err := conn.conn.ReadMessage()
		if err != nil {
			s.logger.Info("connection closed",
				zap.String("room_id", controller.ID()),
				zap.String("player_id", playerID),
				zap.Error(err),
			)
			controller.Disconnect(playerID)
			return
		}

		env, err := ParseEnvelope(raw)
		if err != nil {
			s.writeError(conn, "INVALID_MESSAGE", err.Error())
			continue
		}

		switch env.Type {
		case MessageStartGame:
			err = controller.StartGame(playerID)
		case MessageStageCardClicked:
			err = controller.StageCardClicked(playerID, env.Card.UID)
		}
		if err != nil {
			s.writeError(conn, game.ErrorCode(err), err.Error())
		}
	}
}

func (s *Server) writeError(conn *safeConn, code, message string) {
	if err := conn.WriteJSON(NewErrorMessage(code, message)); err != nil {
		s.logger.Warn("failed to send error message", zap.Error(err))
	}
}
