package leaderboard

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// link owns one websocket connection; writeLoop is its only writer
type link struct {
	conn         *websocket.Conn
	writeTimeout time.Duration

	sendCh    chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newLink(conn *websocket.Conn, queueSize int, writeTimeout time.Duration) *link {
	if queueSize <= 0 {
		queueSize = 16
	}
	return &link{
		conn:         conn,
		writeTimeout: writeTimeout,
		sendCh:       make(chan []byte, queueSize),
		closeCh:      make(chan struct{}),
	}
}

// send queues a frame; false if closed or the queue is full
func (l *link) send(data []byte) bool {
	select {
	case <-l.closeCh:
		return false
	default:
	}

	select {
	case l.sendCh <- data:
		return true
	default:
		return false
	}
}

func (l *link) close() {
	l.closeOnce.Do(func() {
		close(l.closeCh)
		l.conn.Close()
	})
}

func (l *link) closed() bool {
	select {
	case <-l.closeCh:
		return true
	default:
		return false
	}
}

func (l *link) writeLoop() {
	defer l.close()

	for {
		select {
		case <-l.closeCh:
			return
		case data := <-l.sendCh:
			if l.writeTimeout > 0 {
				l.conn.SetWriteDeadline(time.Now().Add(l.writeTimeout))
			}
			if err := l.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}
