// Package spectator 通过 WebSocket 向只读观众推送事件和世界快照
//
// 游戏循环在自己的 goroutine 中调用 PublishEvent/PublishSnapshot，
// 每个客户端有独立的发送队列和写协程；队列满时丢弃该客户端的消息，
// 不会阻塞游戏循环。
package spectator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/decker502/dragonegg/pkg/events"
	"github.com/decker502/dragonegg/pkg/world"
)

const (
	writeWait      = 5 * time.Second
	sendBufferSize = 64
)

// Message 推送给观众的消息
type Message struct {
	Type       string          `json:"type"` // hello | event | snapshot
	Event      *EventPayload   `json:"event,omitempty"`
	Snapshot   *world.Snapshot `json:"snapshot,omitempty"`
	ServerTime int64           `json:"serverTime"`
}

// EventPayload 事件内容
type EventPayload struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Flag  bool   `json:"flag,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub 管理观众连接
type Hub struct {
	mu           sync.Mutex
	clients      map[*client]struct{}
	lastSnapshot []byte
	dropped      int

	upgrader websocket.Upgrader
}

// NewHub 创建观众中心
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler 返回 WebSocket 升级处理器
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(h.serveWS)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Spectator] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	hello, err := encode(Message{Type: "hello"})
	if err != nil {
		log.Printf("[Spectator] failed to marshal hello: %v", err)
		conn.Close()
		return
	}
	c.send <- hello

	h.mu.Lock()
	if h.lastSnapshot != nil {
		c.send <- h.lastSnapshot
	}
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	log.Printf("[Spectator] %s joined (%d watching)", r.RemoteAddr, count)

	go h.writePump(c)
	h.readPump(c)
}

// readPump 丢弃观众发来的消息，直到连接断开
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[Spectator] write failed: %v", err)
			h.remove(c)
			return
		}
	}
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(writeWait))
}

// remove 注销客户端并关闭其发送队列（可重复调用）
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// PublishEvent 广播一条事件
func (h *Hub) PublishEvent(ev events.Event) {
	data, err := encode(Message{
		Type:  "event",
		Event: &EventPayload{Name: ev.Type.String(), Value: ev.Value, Flag: ev.Flag},
	})
	if err != nil {
		log.Printf("[Spectator] failed to marshal event: %v", err)
		return
	}
	h.broadcast(data, false)
}

// PublishSnapshot 广播世界快照，并保存为新观众的初始画面
func (h *Hub) PublishSnapshot(snap world.Snapshot) {
	data, err := encode(Message{Type: "snapshot", Snapshot: &snap})
	if err != nil {
		log.Printf("[Spectator] failed to marshal snapshot: %v", err)
		return
	}
	h.broadcast(data, true)
}

func (h *Hub) broadcast(data []byte, snapshot bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if snapshot {
		h.lastSnapshot = data
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
}

// ClientCount 返回当前观众数量
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped 返回因队列已满而丢弃的消息数
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close 断开所有观众
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// Serve 在 addr 上提供 /ws 端点，ctx 取消时关闭服务
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h.Handler())

	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("[Spectator] listening on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectator server failed: %w", err)
	}
	return nil
}

func encode(msg Message) ([]byte, error) {
	msg.ServerTime = time.Now().UnixMilli()
	return json.Marshal(msg)
}
