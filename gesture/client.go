package gesture

import (
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/balance/constants"
)

// Client is one websocket classifier connection
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

func newClient(conn *websocket.Conn, id string) *Client {
	return &Client{
		id:   id,
		conn: conn,
		send: make(chan []byte, constants.GestureSendBuffer),
		done: make(chan struct{}),
	}
}

// ID returns the client's uuid
func (c *Client) ID() string {
	return c.id
}

// readPump reads classifier frames until the connection drops, then unregisters the client
func (c *Client) readPump(s *Server) {
	defer func() {
		s.unregister(c)
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(constants.GestureMaxMessage)
	c.conn.SetReadDeadline(time.Now().Add(constants.GesturePongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(constants.GesturePongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("gesture: client %s unexpected close: %v", c.id, err)
			}
			return
		}
		if err := s.submit(data); err != nil {
			log.Printf("gesture: client %s: %v", c.id, err)
		}
	}
}

// writePump sends queued frames and heartbeat pings
func (c *Client) writePump() {
	ticker := time.NewTicker(constants.GesturePingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(constants.GestureWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("gesture: client %s write: %v", c.id, err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(constants.GestureWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
