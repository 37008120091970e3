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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/input"
)

// Submission is the session record of one text submission.
type Submission struct {
	Timestamp   time.Time `json:"timestamp"`
	Text        string    `json:"text"`
	Mode        string    `json:"mode,omitempty"`
	TypingRate  int       `json:"typing_rate,omitempty"`
	QueueBefore int       `json:"queue_before"`
	QueueAfter  int       `json:"queue_after"`
	PlaybackMs  int       `json:"playback_ms"`
	Error       string    `json:"error,omitempty"`
}

// Session accumulates a record of everything submitted through the
// automation server and writes it out as a JSON file when closed. The files
// are a diagnostic artefact for development loops: paired with the
// emulator's own logs they answer "what was typed, and when" after the
// fact.
type Session struct {
	crit sync.Mutex

	ID          string       `json:"session_id"`
	StartedAt   time.Time    `json:"started_at"`
	EndedAt     time.Time    `json:"ended_at"`
	Submissions []Submission `json:"submissions"`

	dir string
}

// NewSession is the preferred method of initialisation for the Session type.
// The directory is created on Close() if it does not exist.
func NewSession(dir string) *Session {
	now := time.Now()
	return &Session{
		ID:          now.Format("20060102_150405"),
		StartedAt:   now,
		Submissions: make([]Submission, 0),
		dir:         dir,
	}
}

func (ses *Session) record(req TypeRequest, info input.QueuedInfo, err error) {
	ses.crit.Lock()
	defer ses.crit.Unlock()

	sub := Submission{
		Timestamp:   time.Now(),
		Text:        req.Text,
		Mode:        req.Mode,
		TypingRate:  req.TypingRate,
		QueueBefore: info.SizeBefore,
		QueueAfter:  info.SizeAfter,
		PlaybackMs:  info.PlaybackMs,
	}
	if err != nil {
		sub.Error = err.Error()
	}
	ses.Submissions = append(ses.Submissions, sub)
}

// Filename of the session log that Close() will write.
func (ses *Session) Filename() string {
	return filepath.Join(ses.dir, fmt.Sprintf("session_%s.json", ses.ID))
}

// Close writes the session log. A session with no submissions writes
// nothing.
func (ses *Session) Close() error {
	ses.crit.Lock()
	defer ses.crit.Unlock()

	if len(ses.Submissions) == 0 {
		return nil
	}

	ses.EndedAt = time.Now()

	if err := os.MkdirAll(ses.dir, 0755); err != nil {
		return curated.Errorf("session: %v", err)
	}

	data, err := json.MarshalIndent(ses, "", "  ")
	if err != nil {
		return curated.Errorf("session: %v", err)
	}

	if err := os.WriteFile(ses.Filename(), data, 0644); err != nil {
		return curated.Errorf("session: %v", err)
	}

	return nil
}
