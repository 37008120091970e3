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

package curated_test

import (
	"errors"
	"testing"

	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/test"
)

const testPattern = "test error: %v"

func TestIdentity(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testPattern))
	test.ExpectFailure(t, curated.Is(err, "some other pattern: %v"))

	// errors from the standard library are not curated errors
	plain := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(plain))
	test.ExpectFailure(t, curated.Is(plain, testPattern))

	// nil is never a curated error
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf("wrapping: %v", inner)

	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, "wrapping: %v"))
	test.ExpectFailure(t, curated.Has(outer, "unseen pattern"))

	// Is() does not look into the chain
	test.ExpectFailure(t, curated.Is(outer, testPattern))
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are removed when the error message is
	// formatted
	inner := curated.Errorf("input: %v", errors.New("something happened"))
	outer := curated.Errorf("input: %v", inner)
	test.ExpectEquality(t, outer.Error(), "input: something happened")
}
