package assign

import (
	"sync"

	"bitbucket.org/airenas/devtasks/internal/app/assign/api"
	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//WsConn is a websocket connection abstraction
type WsConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

// wsHub keeps subscribed connections, writes to connections are serialized by the lock
type wsHub struct {
	lock  sync.Mutex
	conns map[WsConn]string
	last  *api.Result
}

func newWsHub() *wsHub {
	return &wsHub{conns: make(map[WsConn]string)}
}

// add registers connection and sends the initial result to it
func (h *wsHub) add(conn WsConn, res *api.Result) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	if res != nil {
		if err := conn.WriteJSON(res); err != nil {
			return errors.Wrap(err, "Cannot write to websocket")
		}
	}
	id := uuid.New().String()
	h.conns[conn] = id
	cmdapp.Log.Infof("Saved connection %s, total: %d", id, len(h.conns))
	return nil
}

func (h *wsHub) remove(conn WsConn) bool {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.removeLocked(conn)
}

func (h *wsHub) removeLocked(conn WsConn) bool {
	id, found := h.conns[conn]
	if found {
		delete(h.conns, conn)
		cmdapp.Log.Infof("Deleted connection %s, total: %d", id, len(h.conns))
	}
	return found
}

func (h *wsHub) count() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.conns)
}

func (h *wsHub) lastResult() *api.Result {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.last
}

// publish remembers the result and sends it to all connections, drops failed ones.
// Returns count of successful sends.
func (h *wsHub) publish(res *api.Result) int {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.last = res
	sent := 0
	for c, id := range h.conns {
		cmdapp.Log.Debugf("Sending result to %s", id)
		if err := c.WriteJSON(res); err != nil {
			cmdapp.Log.Error(errors.Wrapf(err, "Cannot write to websocket %s", id))
			h.removeLocked(c)
			cmdapp.LogIf(c.Close())
			continue
		}
		sent++
	}
	return sent
}

func handleConnection(h *wsHub, conn WsConn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cmdapp.Log.Debugf("Connection read finished: %v", err)
			break
		}
	}
	if h.remove(conn) {
		cmdapp.LogIf(conn.Close())
	}
}
