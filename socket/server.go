package socket

import (
	"log"

	"ember_server/models"

	socketio "github.com/googollee/go-socket.io"
)

// Server pushes stored chat messages to connected clients: socket.io rooms
// carry the network leg, the broker serves in-process subscribers.
type Server struct {
	IO     *socketio.Server
	Broker *MessageBroker
}

// NewServer initializes the Socket.IO server and its event handlers.
func NewServer() *Server {
	io := socketio.NewServer(nil)
	s := &Server{IO: io, Broker: NewMessageBroker()}

	io.OnConnect("/", func(conn socketio.Conn) error {
		log.Println("✅ Socket connected:", conn.ID())
		return nil
	})

	io.OnEvent("/", "join", func(conn socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("❌ Invalid matchId in join request")
			return
		}
		log.Printf("👥 Socket %s joined match %s", conn.ID(), matchID)
		conn.Join(matchID)
	})

	io.OnEvent("/", "leave", func(conn socketio.Conn, matchID string) {
		conn.Leave(matchID)
	})

	io.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", conn.ID(), reason)
	})

	return s
}

// BroadcastMessage pushes a freshly stored message to the match's room and
// to in-process subscribers.
func (s *Server) BroadcastMessage(message models.Message) {
	s.IO.BroadcastToRoom("/", message.MatchID, "newMessage", message)
	s.Broker.Publish(message)
}
