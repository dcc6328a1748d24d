package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// sessionRequest is the incoming WebSocket message format.
type sessionRequest struct {
	Type  string `json:"type"` // "search", "clear", "category" or "theme"
	Value string `json:"value,omitempty"`
}

// sessionResponse is the outgoing WebSocket message format.
type sessionResponse struct {
	Type         string           `json:"type"` // "render" or "error"
	SessionID    string           `json:"session_id"`
	Content      string           `json:"content,omitempty"`
	HTML         string           `json:"html,omitempty"`
	Summary      string           `json:"summary,omitempty"`
	Count        int              `json:"count"`
	Search       string           `json:"search"`
	ClearVisible bool             `json:"clear_visible"`
	Active       catalog.Category `json:"active,omitempty"`
	Theme        app.Theme        `json:"theme,omitempty"`
	ThemeClass   string           `json:"theme_class,omitempty"`
	Focus        bool             `json:"focus"`
	Loading      bool             `json:"loading"`
}

// session is one live viewer connection. All fields are owned by the
// goroutine running handleSession.
type session struct {
	id   string
	conn *websocket.Conn
}

func (wb *Web) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	s := &session{id: uuid.New().String(), conn: conn}
	c := app.NewController(wb.prefs, wb.resolveTheme(r), s.render)

	incoming := make(chan []byte)
	quit := make(chan struct{})
	defer close(quit)
	go s.readLoop(incoming, quit)

	var loaded <-chan struct{}
	if !wb.holder.Apply(c) {
		s.render(c.View())
		loaded = wb.holder.Done()
	}

	for {
		select {
		case <-loaded:
			loaded = nil
			wb.holder.Apply(c)
		case msg, ok := <-incoming:
			if !ok {
				return
			}
			s.handleMessage(r, c, msg)
		}
	}
}

// readLoop forwards raw messages until the connection fails or quit closes.
func (s *session) readLoop(out chan<- []byte, quit <-chan struct{}) {
	defer close(out)
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: session %s: websocket read: %v", s.id, err)
			}
			return
		}
		select {
		case out <- msg:
		case <-quit:
			return
		}
	}
}

func (s *session) handleMessage(r *http.Request, c *app.Controller, msg []byte) {
	var req sessionRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		s.sendError("invalid message format")
		return
	}

	switch req.Type {
	case "search":
		c.SetSearch(req.Value)
	case "clear":
		c.ClearSearch()
	case "category":
		cat, err := catalog.ParseCategory(req.Value)
		if err != nil {
			s.sendError(err.Error())
			return
		}
		c.SetCategory(cat)
	case "theme":
		if err := c.ToggleTheme(r.Context()); err != nil {
			log.Printf("web: session %s: %v", s.id, err)
			s.sendError("theme applied but could not be saved")
		}
	default:
		s.sendError("unknown message type: " + req.Type)
	}
}

// render is the controller's render callback.
func (s *session) render(v app.View) {
	fragment, err := view.RenderFragment(v.List)
	if err != nil {
		s.sendError(err.Error())
		return
	}
	s.send(sessionResponse{
		Type:         "render",
		SessionID:    s.id,
		HTML:         fragment,
		Summary:      v.List.Summary,
		Count:        v.List.Count,
		Search:       v.Search,
		ClearVisible: v.ClearVisible,
		Active:       v.Active,
		Theme:        v.Theme,
		ThemeClass:   v.Theme.Class(),
		Focus:        v.FocusSearch,
		Loading:      v.Loading,
	})
}

func (s *session) sendError(content string) {
	s.send(sessionResponse{Type: "error", SessionID: s.id, Content: content})
}

func (s *session) send(resp sessionResponse) {
	if err := s.conn.WriteJSON(resp); err != nil {
		log.Printf("web: session %s: websocket write: %v", s.id, err)
	}
}
