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

package automation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sixteenbit/x16drive/automation"
	"github.com/sixteenbit/x16drive/hardware"
	"github.com/sixteenbit/x16drive/hardware/clocks"
	"github.com/sixteenbit/x16drive/test"
)

type fixture struct {
	x16  *hardware.X16
	ts   *httptest.Server
	quit chan bool
}

func startFixture(t *testing.T) *fixture {
	t.Helper()

	fx := &fixture{
		x16:  hardware.NewX16(clocks.Full),
		quit: make(chan bool),
	}

	srv := automation.NewServer(fx.x16, "localhost:0")
	fx.ts = httptest.NewServer(srv.Handler())

	go fx.x16.RunRealtime(fx.quit)

	t.Cleanup(func() {
		close(fx.quit)
		fx.ts.Close()
	})

	return fx
}

func (fx *fixture) post(t *testing.T, path string, body string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := http.Post(fx.ts.URL+path, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	defer resp.Body.Close()

	var v map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response from %s: %v", path, err)
	}
	return resp.StatusCode, v
}

func (fx *fixture) status(t *testing.T) map[string]interface{} {
	t.Helper()

	resp, err := http.Get(fx.ts.URL + "/v1/status")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	defer resp.Body.Close()

	var v map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	return v
}

// waitFor polls the status endpoint until the condition holds or a generous
// timeout expires. playback happens in virtual time paced against the host
// clock so there's a real wait involved.
func (fx *fixture) waitFor(t *testing.T, cond func(map[string]interface{}) bool) {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if cond(fx.status(t)) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not reached before timeout")
}

func TestTypeEndpoint(t *testing.T) {
	fx := startFixture(t)

	code, v := fx.post(t, "/v1/type", `{"text": "hello", "typing_rate": 100}`)
	test.ExpectEquality(t, code, http.StatusOK)
	test.ExpectEquality(t, v["status"].(string), "success")
	test.ExpectEquality(t, v["text"].(string), "hello")
	test.ExpectEquality(t, int(v["chars"].(float64)), 5)
	test.ExpectEquality(t, int(v["queue_after"].(float64)), 10)

	// five characters at 100ms per character: four full gaps plus the final
	// key-up spacing
	test.ExpectEquality(t, int(v["playback_ms"].(float64)), 402)

	// the queue eventually drains with no keys left held
	fx.waitFor(t, func(v map[string]interface{}) bool {
		return int(v["queue_len"].(float64)) == 0
	})
	test.ExpectEquality(t, len(fx.x16.SMC.Held()), 0)
}

func TestTypeRateFloor(t *testing.T) {
	fx := startFixture(t)

	// a 1ms rate is below the server's floor and is raised to it
	code, v := fx.post(t, "/v1/type", `{"text": "ab", "typing_rate": 1}`)
	test.ExpectEquality(t, code, http.StatusOK)

	// one full gap at the 30ms floor plus the final key-up spacing
	test.ExpectEquality(t, int(v["playback_ms"].(float64)), 32)
}

func TestTypeBadMode(t *testing.T) {
	fx := startFixture(t)

	code, v := fx.post(t, "/v1/type", `{"text": "ab", "mode": "ebcdic"}`)
	test.ExpectEquality(t, code, http.StatusBadRequest)
	test.ExpectEquality(t, v["status"].(string), "error")
}

func TestTypeCapacity(t *testing.T) {
	fx := startFixture(t)

	// too long to ever fit in the queue
	long := strings.Repeat("a", 3000)
	code, v := fx.post(t, "/v1/type", `{"text": "`+long+`", "typing_rate": 100}`)
	test.ExpectEquality(t, code, http.StatusConflict)
	test.ExpectEquality(t, v["status"].(string), "error")
	test.ExpectSuccess(t, strings.Contains(v["error"].(string), "full"))
	test.ExpectEquality(t, int(v["queue_before"].(float64)), int(v["queue_after"].(float64)))
}

func TestKeyEndpoint(t *testing.T) {
	fx := startFixture(t)

	code, v := fx.post(t, "/v1/key", `{"key": "F1", "pressed": true}`)
	test.ExpectEquality(t, code, http.StatusOK)
	test.ExpectEquality(t, v["status"].(string), "success")

	// F1 is key number 112. it stays down until released
	fx.waitFor(t, func(v map[string]interface{}) bool {
		held, ok := v["held_keys"].([]interface{})
		return ok && len(held) == 1 && int(held[0].(float64)) == 112
	})

	code, _ = fx.post(t, "/v1/key", `{"key": "F1", "pressed": false}`)
	test.ExpectEquality(t, code, http.StatusOK)
	fx.waitFor(t, func(v map[string]interface{}) bool {
		held, _ := v["held_keys"].([]interface{})
		return len(held) == 0
	})

	// unknown key names are rejected
	code, v = fx.post(t, "/v1/key", `{"key": "NOSUCHKEY", "pressed": true}`)
	test.ExpectEquality(t, code, http.StatusBadRequest)
	test.ExpectEquality(t, v["status"].(string), "error")
}

func TestClearEndpoint(t *testing.T) {
	fx := startFixture(t)

	code, _ := fx.post(t, "/v1/type", `{"text": "hello world", "typing_rate": 1000}`)
	test.ExpectEquality(t, code, http.StatusOK)

	code, v := fx.post(t, "/v1/clear", `{}`)
	test.ExpectEquality(t, code, http.StatusOK)
	test.ExpectEquality(t, v["status"].(string), "success")

	fx.waitFor(t, func(v map[string]interface{}) bool {
		return int(v["queue_len"].(float64)) == 0
	})
}
