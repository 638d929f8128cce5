package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/mandelsoft/goutils/general"
)

type Client struct {
	dialer ws.Dialer
	url    string
}

func NewClient(url string, dialer ...ws.Dialer) *Client {
	return &Client{
		dialer: general.OptionalDefaulted(ws.DefaultDialer, dialer...),
		url:    url,
	}
}

// Watch registers at the viewer endpoint and passes all received
// events to the handler. It returns when the context is done or
// the server closes the connection.
func (c *Client) Watch(ctx context.Context, req Request, h EventHandler) error {
	conn, _, _, err := c.dialer.Dial(ctx, c.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	data, _ := json.Marshal(req)
	err = wsutil.WriteClientMessage(conn, ws.OpText, data)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		msg, _, err := wsutil.ReadServerData(conn)
		if err != nil {
			var closed wsutil.ClosedError
			if ctx.Err() != nil || errors.Is(err, io.EOF) || errors.As(err, &closed) {
				return nil
			}
			return err
		}
		evt, err := decode(msg)
		if err != nil {
			return err
		}
		h.HandleEvent(*evt)
	}
}

func decode(msg []byte) (*Event, error) {
	var probe Error
	if json.Unmarshal(msg, &probe) == nil && probe.Error != "" {
		return nil, fmt.Errorf("viewer server: %s", probe.Error)
	}
	var evt Event
	err := json.Unmarshal(msg, &evt)
	if err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}
	return &evt, nil
}
