package reading

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"arcana/internal/session"
	dErrors "arcana/pkg/domain-errors"
)

// ValidatePicks checks the raw picks payload against a session's pool.
// Checks run in fixed precedence order and the first failing check determines
// the reported code:
//
//  1. picks must be a JSON array of exactly required elements
//  2. every element must coerce to an integer
//  3. every integer must be a member of the session's pool
//  4. no integer may repeat
//
// On success every returned pick is a distinct pool member, safe to index
// into the catalog.
func ValidatePicks(sess session.Session, raw json.RawMessage, required int) ([]int, error) {
	elems, err := decodePicksArray(raw)
	if err != nil {
		return nil, err
	}
	if len(elems) != required {
		return nil, dErrors.New(dErrors.CodeWrongPickCount,
			fmt.Sprintf("picks must contain exactly %d cards", required))
	}

	picks := make([]int, 0, required)
	for _, elem := range elems {
		n, ok := coerceInt(elem)
		if !ok {
			return nil, dErrors.New(dErrors.CodeInvalidPick, "every pick must be an integer card index")
		}
		picks = append(picks, n)
	}

	for _, p := range picks {
		if !sess.PoolContains(p) {
			return nil, dErrors.New(dErrors.CodePickOutOfPool,
				fmt.Sprintf("card %d was not part of this shuffle", p))
		}
	}

	seen := make(map[int]struct{}, required)
	for _, p := range picks {
		if _, dup := seen[p]; dup {
			return nil, dErrors.New(dErrors.CodeDuplicatePick,
				fmt.Sprintf("card %d was picked more than once", p))
		}
		seen[p] = struct{}{}
	}

	return picks, nil
}

func decodePicksArray(raw json.RawMessage) ([]json.Number, error) {
	notArray := dErrors.New(dErrors.CodePicksNotArray, "picks must be an array")
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, notArray
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return nil, notArray
	}

	// Element type checking is deferred to coerceInt; here non-numbers become
	// invalid json.Number values that coercion rejects.
	out := make([]json.Number, len(elems))
	for i, e := range elems {
		if n, ok := e.(json.Number); ok {
			out[i] = n
		} else {
			out[i] = json.Number("")
		}
	}
	return out, nil
}

// coerceInt accepts integral JSON numbers, including float forms like 3.0.
func coerceInt(n json.Number) (int, bool) {
	if v, err := n.Int64(); err == nil {
		return int(v), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
