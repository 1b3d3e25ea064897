// Package server hosts the websocket endpoint that receives commands.
package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/velen24/pointcast/internal/hostinput"
	"github.com/velen24/pointcast/internal/protocol"
)

// Server upgrades handheld connections and applies their commands to the
// host pointer. Multiple handhelds may be connected at once; each gets its
// own smoothing state.
type Server struct {
	upgrader     websocket.Upgrader
	injector     hostinput.Injector
	joystickSens float64
	scrollSens   float64
	smoothing    float64
}

// New returns a command server applying input through injector.
func New(injector hostinput.Injector, joystickSens, scrollSens, smoothing float64) *Server {
	return &Server{
		injector:     injector,
		joystickSens: joystickSens,
		scrollSens:   scrollSens,
		smoothing:    smoothing,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes commands until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	log.Printf("control: client connected: %s", conn.RemoteAddr())
	pointer := NewPointer(s.joystickSens, s.smoothing)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("control: client disconnected: %s", conn.RemoteAddr())
			return
		}
		cmd, err := protocol.Decode(data)
		if err != nil {
			log.Printf("control: bad message: %v", err)
			continue
		}
		if err := s.Apply(pointer, cmd); err != nil {
			log.Printf("control: apply %s: %v", cmd.Action, err)
		}
	}
}

// Apply executes one command against the injector. Unknown actions are
// ignored. Injection errors are reported but never tear down the connection.
func (s *Server) Apply(p *Pointer, cmd protocol.Command) error {
	switch cmd.Action {
	case protocol.ActionMove:
		dx, dy := p.Step(cmd.XOrZero(), cmd.YOrZero())
		if dx == 0 && dy == 0 {
			return nil
		}
		return s.injector.MoveRel(dx, dy)
	case protocol.ActionScroll:
		delta := -int(cmd.YOrZero() * s.scrollSens)
		if delta == 0 {
			return nil
		}
		return s.injector.Wheel(delta)
	case protocol.ActionLeftClick:
		return s.injector.LeftClick()
	case protocol.ActionRightClick:
		return s.injector.RightClick()
	case protocol.ActionDoubleClick:
		return s.injector.DoubleClick()
	case protocol.ActionDragStart:
		return s.injector.LeftDown()
	case protocol.ActionDragEnd:
		return s.injector.LeftUp()
	default:
		return nil
	}
}
