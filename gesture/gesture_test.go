package gesture

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/events"
	"github.com/lixenwraith/balance/status"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server, *events.EventQueue) {
	t.Helper()
	q := events.NewEventQueue()
	s := NewServer(Config{MinConfidence: 0.3}, q)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts, q
}

func post(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/gesture", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %s within deadline", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHealth(t *testing.T) {
	_, ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("Expected 200 ok, got %d %v", resp.StatusCode, body)
	}
}

func TestPostGestureQueuesEvent(t *testing.T) {
	_, ts, q := newTestServer(t)

	resp := post(t, ts, `{"side":"left","label":"LEFTSIDE","confidence":0.8}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", resp.StatusCode)
	}

	evs := q.Consume()
	if len(evs) != 1 {
		t.Fatalf("Expected one queued event, got %d", len(evs))
	}
	ev := evs[0]
	if ev.Type != events.EventGesture || ev.Label != "LEFTSIDE" || components.Side(ev.Side) != components.SideLeft {
		t.Errorf("Expected left LEFTSIDE gesture, got %+v", ev)
	}
}

func TestLowConfidenceDropped(t *testing.T) {
	_, ts, q := newTestServer(t)

	resp := post(t, ts, `{"side":"right","label":"RIGHTSIDE","confidence":0.29}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("Expected 202 for dropped label, got %d", resp.StatusCode)
	}
	var body map[string]bool
	json.NewDecoder(resp.Body).Decode(&body)
	if body["accepted"] {
		t.Error("Expected accepted=false")
	}
	if evs := q.Consume(); len(evs) != 0 {
		t.Errorf("Expected no queued events, got %d", len(evs))
	}
}

func TestBadRequests(t *testing.T) {
	_, ts, q := newTestServer(t)

	for _, body := range []string{
		`not json`,
		`{"side":"up","label":"LEFTSIDE","confidence":0.9}`,
		`{"side":"left","label":"","confidence":0.9}`,
	} {
		if resp := post(t, ts, body); resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d", body, resp.StatusCode)
		}
	}
	if evs := q.Consume(); len(evs) != 0 {
		t.Errorf("Expected no queued events, got %d", len(evs))
	}
}

func TestWebsocketGestures(t *testing.T) {
	s, ts, q := newTestServer(t)
	conn := dial(t, ts)

	waitFor(t, "client registration", func() bool { return s.ClientCount() == 1 })

	msg := Message{Side: "right", Label: "RIGHTSIDE", Confidence: 0.9}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got []events.GameEvent
	waitFor(t, "queued gesture", func() bool {
		got = append(got, q.Consume()...)
		return len(got) > 0
	})
	if got[0].Label != "RIGHTSIDE" || components.Side(got[0].Side) != components.SideRight {
		t.Errorf("Expected right RIGHTSIDE gesture, got %+v", got[0])
	}
}

func TestBroadcastPhase(t *testing.T) {
	s, ts, _ := newTestServer(t)
	conn := dial(t, ts)
	waitFor(t, "client registration", func() bool { return s.ClientCount() == 1 })

	s.BroadcastPhase("paused")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var pm PhaseMessage
	if err := conn.ReadJSON(&pm); err != nil {
		t.Fatalf("read: %v", err)
	}
	if pm.Type != "phase" || pm.Phase != "paused" {
		t.Errorf("Expected paused phase message, got %+v", pm)
	}

	// Late joiners get the last phase on connect
	late := dial(t, ts)
	late.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := late.ReadJSON(&pm); err != nil {
		t.Fatalf("read late: %v", err)
	}
	if pm.Phase != "paused" {
		t.Errorf("Expected late client to receive paused, got %+v", pm)
	}
}

func TestClientDisconnectUnregisters(t *testing.T) {
	s, ts, _ := newTestServer(t)
	conn := dial(t, ts)
	waitFor(t, "client registration", func() bool { return s.ClientCount() == 1 })

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	waitFor(t, "client removal", func() bool { return s.ClientCount() == 0 })
}

func TestApplySteersCars(t *testing.T) {
	g := engine.NewGame(engine.DefaultTuning(), rand.New(rand.NewSource(1)), nil)

	if Apply(g, Event(components.SideLeft, "OTHER")) {
		t.Error("Expected gesture ignored before the round starts")
	}

	g.Start()
	if !Apply(g, Event(components.SideLeft, "OTHER")) {
		t.Fatal("Expected non-LEFTSIDE label to move the left car right")
	}
	if g.Player.Left.LaneIndex != 1 {
		t.Errorf("Expected left car in lane 1, got %d", g.Player.Left.LaneIndex)
	}
	if !Apply(g, Event(components.SideRight, engine.LabelRightSide)) {
		t.Fatal("Expected RIGHTSIDE to move the right car right")
	}
	if g.Player.Right.LaneIndex != 1 {
		t.Errorf("Expected right car in lane 1, got %d", g.Player.Right.LaneIndex)
	}
	if Apply(g, events.GameEvent{Type: events.EventBlockHit}) {
		t.Error("Expected non-gesture events ignored")
	}
}

func TestServerStartAndShutdown(t *testing.T) {
	s := NewServer(Config{Addr: "127.0.0.1:0"}, events.NewEventQueue())
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	resp, err := http.Get("http://" + s.Addr() + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from started server, got %d", resp.StatusCode)
	}
	if err := s.Shutdown(t.Context()); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}

func TestMetricsCounted(t *testing.T) {
	q := events.NewEventQueue()
	reg := status.NewRegistry()
	s := NewServer(Config{MinConfidence: 0.3, Metrics: reg}, q)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	post(t, ts, `{"side":"left","label":"LEFTSIDE","confidence":0.9}`)
	post(t, ts, `{"side":"left","label":"LEFTSIDE","confidence":0.1}`)
	post(t, ts, `{"side":"middle","label":"LEFTSIDE","confidence":0.9}`)

	if reg.Int(status.GestureAccepted) != 1 || reg.Int(status.GestureDropped) != 1 || reg.Int(status.GestureRejected) != 1 {
		t.Errorf("Expected one of each outcome, got %s", reg.Summary())
	}
}
