// This file is part of x16drive.
//
// x16drive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// x16drive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with x16drive.  If not, see <https://www.gnu.org/licenses/>.

package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/bradleyjkemp/memviz"

	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/hardware"
	"github.com/sixteenbit/x16drive/input"
	"github.com/sixteenbit/x16drive/logger"
)

// DefaultMinRate is the typing-rate floor applied by the automation server.
// More conservative than the scheduler's own default: external tooling has
// no feel for how fast the target program polls the keyboard, so the server
// keeps it at a rate known to be reliable. A floor of zero disables the
// check.
const DefaultMinRate = 30

// DefaultKeyEventDelay used by the automation server. See the note against
// DefaultMinRate for why this is wider than the scheduler's own default.
const DefaultKeyEventDelay = 2

// Server exposes a machine to external automation over HTTP.
type Server struct {
	x16 *hardware.X16
	srv *http.Server
	mux *http.ServeMux

	// Session optionally records every submission handled by the server. nil
	// means no session recording
	Session *Session

	// MinRate is the floor applied to submitted typing rates (ms)
	MinRate int

	// DefaultRate is used when a request does not specify a typing rate (ms)
	DefaultRate int
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(x16 *hardware.X16, addr string) *Server {
	srv := &Server{
		x16:         x16,
		mux:         http.NewServeMux(),
		MinRate:     DefaultMinRate,
		DefaultRate: DefaultMinRate,
	}
	x16.Input.KeyEventDelay = DefaultKeyEventDelay

	srv.mux.HandleFunc("/v1/type", srv.handleType)
	srv.mux.HandleFunc("/v1/key", srv.handleKey)
	srv.mux.HandleFunc("/v1/clear", srv.handleClear)
	srv.mux.HandleFunc("/v1/status", srv.handleStatus)
	srv.mux.HandleFunc("/v1/log", srv.handleLog)
	srv.mux.HandleFunc("/v1/memviz", srv.handleMemviz)

	srv.srv = &http.Server{Addr: addr, Handler: srv.mux}

	return srv
}

// Handler returns the http.Handler for the server. Useful for tests.
func (srv *Server) Handler() http.Handler {
	return srv.mux
}

// ListenAndServe blocks, serving automation requests, until Shutdown is
// called.
func (srv *Server) ListenAndServe() error {
	logger.Logf(logger.Allow, "automation", "listening on %s", srv.srv.Addr)
	err := srv.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown the server gracefully, closing the session log if there is one.
func (srv *Server) Shutdown(ctx context.Context) error {
	if srv.Session != nil {
		if err := srv.Session.Close(); err != nil {
			logger.Logf(logger.Allow, "automation", "session: %v", err)
		}
	}
	return srv.srv.Shutdown(ctx)
}

// TypeRequest is the submission form for typed text.
type TypeRequest struct {
	Text string `json:"text"`

	// "ascii", "petscii" or "screen". the empty string means ascii
	Mode string `json:"mode,omitempty"`

	// milliseconds per character. zero selects the server's default rate;
	// values below the server's floor are raised to it
	TypingRate int `json:"typing_rate,omitempty"`
}

// TypeResponse reports the outcome of a text submission. The fields are
// informational only.
type TypeResponse struct {
	Status      string  `json:"status"`
	Text        string  `json:"text,omitempty"`
	Chars       int     `json:"chars,omitempty"`
	PlaybackMs  int     `json:"playback_ms,omitempty"`
	PlaybackSec float64 `json:"playback_sec,omitempty"`
	QueueBefore int     `json:"queue_before"`
	QueueAfter  int     `json:"queue_after"`
	Error       string  `json:"error,omitempty"`
}

// KeyRequest is the submission form for a single key transition.
type KeyRequest struct {
	Key     string `json:"key"`
	Pressed bool   `json:"pressed"`
}

// StatusResponse summarises the machine for external tooling.
type StatusResponse struct {
	ClockMs   int64 `json:"clock_ms"`
	QueueLen  int   `json:"queue_len"`
	PendingMs int   `json:"pending_ms"`
	HeldKeys  []int `json:"held_keys"`
}

func (srv *Server) handleType(w http.ResponseWriter, r *http.Request) {
	var req TypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, TypeResponse{Status: "error", Error: err.Error()})
		return
	}

	mode, err := input.ParseMode(req.Mode)
	if err != nil {
		respond(w, http.StatusBadRequest, TypeResponse{Status: "error", Error: err.Error()})
		return
	}

	rate := req.TypingRate
	if rate <= 0 {
		rate = srv.DefaultRate
	}
	if srv.MinRate > 0 && rate < srv.MinRate {
		logger.Logf(logger.Allow, "automation", "typing rate raised from %dms to the %dms floor", rate, srv.MinRate)
		rate = srv.MinRate
	}

	var info input.QueuedInfo
	var subErr error
	err = srv.x16.PushFuncAndWait(func() {
		info, subErr = srv.x16.Input.SubmitText(req.Text, mode, rate)
	})
	if err != nil {
		respond(w, http.StatusServiceUnavailable, TypeResponse{Status: "error", Error: err.Error()})
		return
	}

	if srv.Session != nil {
		srv.Session.record(req, info, subErr)
	}

	if subErr != nil {
		respond(w, http.StatusConflict, TypeResponse{
			Status:      "error",
			Error:       subErr.Error() + " (buffer may be full; retry later or shorten the input)",
			QueueBefore: info.SizeBefore,
			QueueAfter:  info.SizeAfter,
		})
		return
	}

	respond(w, http.StatusOK, TypeResponse{
		Status:      "success",
		Text:        req.Text,
		Chars:       len(req.Text),
		PlaybackMs:  info.PlaybackMs,
		PlaybackSec: float64(info.PlaybackMs) / 1000.0,
		QueueBefore: info.SizeBefore,
		QueueAfter:  info.SizeAfter,
	})
}

func (srv *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, TypeResponse{Status: "error", Error: err.Error()})
		return
	}

	var subErr error
	err := srv.x16.PushFuncAndWait(func() {
		subErr = srv.x16.Input.PressKey(req.Key, req.Pressed)
	})
	if err != nil {
		respond(w, http.StatusServiceUnavailable, TypeResponse{Status: "error", Error: err.Error()})
		return
	}

	if subErr != nil {
		code := http.StatusConflict
		if curated.Is(subErr, input.UnknownKey) {
			code = http.StatusBadRequest
		}
		respond(w, code, TypeResponse{Status: "error", Error: subErr.Error()})
		return
	}

	respond(w, http.StatusOK, TypeResponse{Status: "success"})
}

func (srv *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	err := srv.x16.PushFuncAndWait(func() {
		srv.x16.Input.Clear()
	})
	if err != nil {
		respond(w, http.StatusServiceUnavailable, TypeResponse{Status: "error", Error: err.Error()})
		return
	}
	respond(w, http.StatusOK, TypeResponse{Status: "success"})
}

func (srv *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var status StatusResponse
	err := srv.x16.PushFuncAndWait(func() {
		status.ClockMs = srv.x16.Clock.Millis()
		status.QueueLen = srv.x16.Input.QueueLen()
		status.PendingMs = srv.x16.Input.PendingMs()
		for _, kc := range srv.x16.SMC.Held() {
			status.HeldKeys = append(status.HeldKeys, int(kc))
		}
	})
	if err != nil {
		respond(w, http.StatusServiceUnavailable, TypeResponse{Status: "error", Error: err.Error()})
		return
	}
	respond(w, http.StatusOK, status)
}

func (srv *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	logger.Tail(w, 50)
}

func (srv *Server) handleMemviz(w http.ResponseWriter, r *http.Request) {
	buf := &bytes.Buffer{}
	err := srv.x16.PushFuncAndWait(func() {
		memviz.Map(buf, srv.x16.Input)
	})
	if err != nil {
		respond(w, http.StatusServiceUnavailable, TypeResponse{Status: "error", Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.Write(buf.Bytes())
}

func respond(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logf(logger.Allow, "automation", "encoding response: %v", err)
	}
}
