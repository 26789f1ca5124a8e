package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"InterviewGolang/pkg/emotion"
	"InterviewGolang/pkg/pose"
)

type ModelKind string

const (
	PoseModel       ModelKind = "POSE"
	ExpressionModel ModelKind = "EXPRESSION"
)

// IInference is the wire adapter to the model service: binary JPEG frame
// in, keypoints or expression scores out. The models themselves are an
// external collaborator; nothing here interprets the results.
type IInference interface {
	DetectPose(ctx context.Context, frame []byte) (pose.Frame, error)
	DetectExpressions(ctx context.Context, frame []byte) (emotion.Scores, error)
	IsConnected(kind ModelKind) bool
	Reconnect(kind ModelKind) error
	CloseConnections()
}

type poseResponse struct {
	Keypoints pose.Frame `json:"keypoints"`
}

type expressionResponse struct {
	Expressions emotion.Scores `json:"expressions"`
}

type inferenceClient struct {
	poseConn     *websocket.Conn
	exprConn     *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewModelClient() IInference {
	client := &inferenceClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go client.connectInBackground(PoseModel)
	go client.connectInBackground(ExpressionModel)

	return client
}

func (c *inferenceClient) connectInBackground(kind ModelKind) {
	if err := c.Reconnect(kind); err != nil {
		log.Printf("Initial connection to %s model failed: %v. Will retry on demand.", kind, err)
	} else {
		log.Printf("Successfully connected to %s model service", kind)
	}
}

func (c *inferenceClient) IsConnected(kind ModelKind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch kind {
	case PoseModel:
		return c.poseConn != nil
	case ExpressionModel:
		return c.exprConn != nil
	default:
		return false
	}
}

func (c *inferenceClient) Reconnect(kind ModelKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if kind == PoseModel && c.poseConn != nil {
		c.poseConn.Close()
		c.poseConn = nil
	} else if kind == ExpressionModel && c.exprConn != nil {
		c.exprConn.Close()
		c.exprConn = nil
	}

	url := modelURL(kind)
	if url == "" {
		return fmt.Errorf("URL for %s model not configured", kind)
	}

	log.Printf("Connecting to %s model at %s", kind, url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		if err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout)); err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	if kind == PoseModel {
		c.poseConn = conn
	} else {
		c.exprConn = conn
	}

	go c.keepAlive(kind)

	return nil
}

func (c *inferenceClient) CloseConnections() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poseConn != nil {
		c.poseConn.Close()
		c.poseConn = nil
	}

	if c.exprConn != nil {
		c.exprConn.Close()
		c.exprConn = nil
	}
}

func (c *inferenceClient) keepAlive(kind ModelKind) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		var conn *websocket.Conn
		if kind == PoseModel {
			conn = c.poseConn
		} else {
			conn = c.exprConn
		}

		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Ping failed for %s model, marking connection as dead: %v", kind, err)
			if kind == PoseModel {
				c.poseConn = nil
			} else {
				c.exprConn = nil
			}
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *inferenceClient) getConnection(kind ModelKind) (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var conn *websocket.Conn
	if kind == PoseModel {
		conn = c.poseConn
	} else {
		conn = c.exprConn
	}

	if conn == nil {
		return nil, fmt.Errorf("not connected to %s model service", kind)
	}

	return conn, nil
}

func (c *inferenceClient) roundTrip(kind ModelKind, frame []byte) ([]byte, error) {
	conn, err := c.getConnection(kind)
	if err != nil {
		if err := c.Reconnect(kind); err != nil {
			return nil, fmt.Errorf("cannot connect to %s model service: %w", kind, err)
		}
		conn, err = c.getConnection(kind)
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.dropConn(kind, conn)
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending %s frame: %w", kind, err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.dropConn(kind, conn)
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading %s message: %w", kind, err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	return message, nil
}

// dropConn must be called with the mutex held.
func (c *inferenceClient) dropConn(kind ModelKind, conn *websocket.Conn) {
	if kind == PoseModel {
		c.poseConn = nil
	} else {
		c.exprConn = nil
	}
	conn.Close()
}

func (c *inferenceClient) DetectPose(ctx context.Context, frame []byte) (pose.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	message, err := c.roundTrip(PoseModel, frame)
	if err != nil {
		return nil, err
	}

	var result poseResponse
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling pose response: %w", err)
	}

	return result.Keypoints, nil
}

func (c *inferenceClient) DetectExpressions(ctx context.Context, frame []byte) (emotion.Scores, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	message, err := c.roundTrip(ExpressionModel, frame)
	if err != nil {
		return nil, err
	}

	var result expressionResponse
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling expression response: %w", err)
	}

	return result.Expressions, nil
}

func modelURL(kind ModelKind) string {
	switch kind {
	case PoseModel:
		url := os.Getenv("AI_POSE_MODEL_URL")
		if url == "" {
			url = "ws://localhost:8000/api/v1/pose/ws"
		}
		return url
	case ExpressionModel:
		url := os.Getenv("AI_EXPRESSION_MODEL_URL")
		if url == "" {
			url = "ws://localhost:8000/api/v1/expression/ws"
		}
		return url
	default:
		return ""
	}
}
