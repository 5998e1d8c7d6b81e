package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"blackjacktable-server/pkg/table"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

type wsClient struct {
	conn *websocket.Conn
	send chan *table.State
}

func (m *Mux) getTableWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		client := &wsClient{
			conn: conn,
			send: make(chan *table.State, 16),
		}

		m.clientsMu.Lock()
		m.clients[client] = true
		m.clientsMu.Unlock()

		// new clients get the current state right away
		m.mu.Lock()
		state := m.tbl.State()
		m.mu.Unlock()
		m.broadcastTo(client, state)

		go m.webSocketWriteLoop(client)
		m.webSocketReadLoop(client)
	}
}

// broadcast pushes the state to every connected client.
// A slow client misses updates rather than holding up the table.
func (m *Mux) broadcast(state *table.State) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()

	for client := range m.clients {
		select {
		case client.send <- state:
		default:
		}
	}
}

func (m *Mux) broadcastTo(client *wsClient, state *table.State) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()

	if m.clients[client] {
		select {
		case client.send <- state:
		default:
		}
	}
}

func (m *Mux) removeClient(client *wsClient) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()

	if m.clients[client] {
		delete(m.clients, client)
		close(client.send)
	}
}

func (m *Mux) webSocketWriteLoop(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case state, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteJSON(state); err != nil {
				return
			}
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(client *wsClient) {
	defer func() {
		m.removeClient(client)
		_ = client.conn.Close()
	}()

	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}
