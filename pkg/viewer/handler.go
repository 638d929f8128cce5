package viewer

import (
	"encoding/json"
	"net"
	"net/http"
	"slices"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"k8s.io/client-go/util/workqueue"
)

// Handler is the http handler for viewer connections. A viewer
// upgrades to a websocket connection and sends its Request as first
// message. Afterwards it receives an Event for every visualized graph
// matching the request.
type Handler struct {
	lock        sync.Mutex
	hub         *Hub
	connections []*connection
}

var _ http.Handler = (*Handler)(nil)

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) Close() error {
	h.lock.Lock()
	conns := slices.Clone(h.connections)
	h.lock.Unlock()

	for _, c := range conns {
		c.Close()
	}
	return nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Info("new viewer request from {{remote}}", "remote", r.RemoteAddr)
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.LogError(err, "upgrading viewer connection")
		return
	}

	msg, _, err := wsutil.ReadClientData(conn)
	if err != nil {
		log.LogError(err, "reading registration request")
		conn.Close()
		return
	}

	var req Request
	err = json.Unmarshal(msg, &req)
	if err != nil {
		log.LogError(err, "decoding registration request")
		wsutil.WriteServerMessage(conn, ws.OpText, (&Error{err.Error()}).Data())
		conn.Close()
		return
	}

	c := newConnection(h, conn, req)
	h.add(c)
	go c.send()
	c.setUnregister(h.hub.RegisterWatchHandler(req, c))
	go c.drain()
}

func (h *Handler) add(c *connection) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.connections = append(h.connections, c)
}

func (h *Handler) remove(c *connection) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.connections = slices.DeleteFunc(h.connections, func(e *connection) bool { return e == c })
}

func (h *Handler) Connections() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.connections)
}

////////////////////////////////////////////////////////////////////////////////

// connection queues the events per graph name. An event not yet
// sent is replaced by a newer one for the same graph.
type connection struct {
	lock       sync.Mutex
	handler    *Handler
	conn       net.Conn
	req        Request
	queue      workqueue.Interface
	pending    map[string][]byte
	unregister func()
	closed     bool
}

func newConnection(h *Handler, conn net.Conn, req Request) *connection {
	return &connection{
		handler: h,
		conn:    conn,
		req:     req,
		queue:   workqueue.New(),
		pending: map[string][]byte{},
	}
}

func (c *connection) HandleEvent(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.LogError(err, "cannot marshal event for {{name}}", "name", e.Name)
		return
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return
	}
	c.pending[e.Name] = data
	c.queue.Add(e.Name)
}

// send writes the queued events until the queue is shut down.
func (c *connection) send() {
	for {
		key, shutdown := c.queue.Get()
		if shutdown {
			return
		}
		name := key.(string)
		c.lock.Lock()
		data := c.pending[name]
		delete(c.pending, name)
		c.lock.Unlock()

		var err error
		if data != nil {
			err = wsutil.WriteServerMessage(c.conn, ws.OpText, data)
		}
		c.queue.Done(key)
		if err != nil {
			log.LogError(err, "cannot send event -> closing connection")
			c.Close()
			return
		}
	}
}

func (c *connection) setUnregister(f func()) {
	c.lock.Lock()
	closed := c.closed
	c.unregister = f
	c.lock.Unlock()
	if closed {
		f()
	}
}

// drain consumes client frames until the connection is closed.
func (c *connection) drain() {
	for {
		_, _, err := wsutil.ReadClientData(c.conn)
		if err != nil {
			c.Close()
			return
		}
	}
}

func (c *connection) Close() error {
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return nil
	}
	c.closed = true
	unregister := c.unregister
	c.lock.Unlock()

	log.Info("closing viewer connection for {{request}}", "request", c.req)
	c.queue.ShutDown()
	err := c.conn.Close()
	if unregister != nil {
		unregister()
	}
	c.handler.remove(c)
	return err
}
