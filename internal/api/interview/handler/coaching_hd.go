package interviewHandler

import (
	"InterviewGolang/internal/api/interview"
	"InterviewGolang/internal/coaching"
	"InterviewGolang/pkg/monitor"
	"InterviewGolang/pkg/pose"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// wsWriter serializes writes to one connection: snapshots come from the
// detection loops, alerts from monitor timers and calibration results from
// the read loop, all on different goroutines.
type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsWriter) writeJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}
	return w.conn.WriteJSON(v)
}

func (h *InterviewHandler) handleCoachingWebSocket(c *websocket.Conn) {
	sessionID := c.Params("id")

	h.log.WithField("session_id", sessionID).Info("Coaching WebSocket client connected")
	defer h.log.WithField("session_id", sessionID).Info("Coaching WebSocket client disconnected")

	writer := &wsWriter{conn: c}

	engine := coaching.NewSession(func(message string, severity monitor.Severity) {
		if err := writer.writeJSON(interview.AlertMessage{
			Type:     interview.ServerMessageAlert,
			Message:  message,
			Severity: string(severity),
		}); err != nil {
			h.log.WithField("error", err.Error()).Warn("Failed to push coaching alert")
		}
	})

	if err := h.registry.Attach(sessionID, engine); err != nil {
		h.log.WithField("session_id", sessionID).Warn("Coaching session already live")
		_ = writer.writeJSON(map[string]string{
			"type":  interview.ServerMessageError,
			"error": interview.ErrSessionAlreadyLive.Error(),
		})
		return
	}
	defer h.registry.Detach(sessionID)

	source := newWSFrameSource()
	defer source.Close()

	driver := coaching.NewDriver(engine, source, h.inference, h.inference, h.log)
	driver.OnSnapshot(func(snap coaching.Snapshot) {
		if err := writer.writeJSON(interview.SnapshotMessage{
			Type:        interview.ServerMessageSnapshot,
			PostureFlag: snap.PostureFlag,
			Emotion:     snap.Emotion,
			Calibrated:  snap.Calibrated,
			Recording:   snap.Recording,
		}); err != nil {
			h.log.WithField("error", err.Error()).Debug("Failed to push snapshot")
		}
	})

	driverCtx, cancelDriver := context.WithCancel(context.Background())
	defer cancelDriver()

	go func() {
		// Start blocks until the client announces its video dimensions.
		if err := driver.Start(driverCtx); err != nil && !errors.Is(err, context.Canceled) {
			h.log.WithField("error", err.Error()).Warn("Detection driver failed to start")
		}
	}()
	defer driver.Stop()

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Coaching WebSocket error: %v", err)
			} else {
				h.log.Info("Coaching WebSocket connection closed")
			}
			break
		}

		switch messageType {
		case websocket.BinaryMessage:
			source.Push(message)

		case websocket.TextMessage:
			h.handleControlMessage(writer, source, engine, message)

		default:
			h.log.Warnf("Received unexpected message type: %d", messageType)
		}
	}
}

func (h *InterviewHandler) handleControlMessage(writer *wsWriter, source *wsFrameSource, engine *coaching.Session, raw []byte) {
	var msg interview.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.log.WithField("error", err.Error()).Warn("Malformed coaching control message")
		return
	}

	switch msg.Type {
	case interview.ClientMessageStart:
		source.SetDimensions(msg.Width, msg.Height)

	case interview.ClientMessageCalibrate:
		result := interview.CalibrationMessage{
			Type: interview.ServerMessageCalibration,
			OK:   true,
		}
		if err := engine.Calibrate(); err != nil {
			result.OK = false
			result.Error = calibrationErrorText(err)
		}
		if err := writer.writeJSON(result); err != nil {
			h.log.WithField("error", err.Error()).Warn("Failed to push calibration result")
		}

	default:
		h.log.Warnf("Unknown coaching control message type: %s", msg.Type)
	}
}

func calibrationErrorText(err error) string {
	switch {
	case errors.Is(err, pose.ErrNotReady):
		return "No frame received yet, face the camera and try again"
	case errors.Is(err, pose.ErrLandmarksHidden):
		return "Make sure your face and both shoulders are visible"
	case errors.Is(err, pose.ErrShouldersTooClose):
		return "Sit facing the camera squarely, then calibrate"
	default:
		return err.Error()
	}
}
