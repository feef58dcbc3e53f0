// Package chario implements the business logic behind GET/PUT /characteristics:
// parsing the query string or JSON body, driving package db per id, and deciding
// the envelope's overall HTTP status the way
// original_source/src/transport/http/handler/characteristics.rs's
// GetCharacteristics/UpdateCharacteristics split the JSON envelope from the
// per-object database calls. Package hapserver wraps this with the actual
// http.Handler plumbing.
package chario

import (
	"strconv"
	"strings"

	"github.com/wrenhouse/hap/db"
	"github.com/wrenhouse/hap/haperr"
)

// statusResourceDoesNotExist/statusServiceCommunicationFailure are the HAP status
// codes used when a lookup fails outright or an unexpected error kind reaches this
// layer; -70409/-70402 are the well-known HAP codes for those conditions.
const (
	statusResourceDoesNotExist        = -70409
	statusServiceCommunicationFailure = -70402
)

// ID is one `aid.iid` pair parsed from a GET /characteristics `id` query parameter.
type ID struct {
	AID uint64
	IID uint64
}

// ParseIDs parses the comma-separated `aid.iid,aid.iid` id list from a
// GET /characteristics query string.
func ParseIDs(raw string) ([]ID, error) {
	if raw == "" {
		return nil, haperr.HTTPStatus(400, "missing id parameter")
	}
	parts := strings.Split(raw, ",")
	out := make([]ID, 0, len(parts))
	for _, p := range parts {
		pair := strings.SplitN(p, ".", 2)
		if len(pair) != 2 {
			return nil, haperr.HTTPStatus(400, "malformed id "+p)
		}
		aid, err := strconv.ParseUint(pair[0], 10, 64)
		if err != nil {
			return nil, haperr.HTTPStatus(400, "malformed aid in id "+p)
		}
		iid, err := strconv.ParseUint(pair[1], 10, 64)
		if err != nil {
			return nil, haperr.HTTPStatus(400, "malformed iid in id "+p)
		}
		out = append(out, ID{AID: aid, IID: iid})
	}
	return out, nil
}

// GetResult is the outcome of a full GET /characteristics request: the per-id
// results (with Status stripped when Code is 200) plus the overall HTTP status to
// respond with.
type GetResult struct {
	Objects []db.ReadResult
	Code    int
}

// ReadAll resolves every id against database, following spec.md §4.C: any failing
// id drops its value and forces an overall 207; if every id succeeds, status
// fields are stripped and the overall code is 200.
func ReadAll(database *db.Database, ids []ID, flags db.ReadFlags) GetResult {
	objects := make([]db.ReadResult, 0, len(ids))
	someErr := false

	for _, id := range ids {
		res, err := database.ReadCharacteristic(id.AID, id.IID, flags)
		if err != nil {
			someErr = true
			code := statusFromError(err)
			res = db.ReadResult{AID: id.AID, IID: id.IID, Status: &code}
		} else {
			zero := 0
			res.Status = &zero
		}
		objects = append(objects, res)
	}

	code := 200
	if someErr {
		code = 207
	} else {
		for i := range objects {
			objects[i].Status = nil
		}
	}
	return GetResult{Objects: objects, Code: code}
}

// PutResult is the outcome of a full PUT /characteristics request.
type PutResult struct {
	Objects []db.WriteResult
	Code    int
}

// WriteAll applies each write in reqs against database in order, following
// spec.md §4.C: all-failure responds 400, partial failure 207, total success 204
// (Objects empty in that case, matching the Rust status_response(NO_CONTENT)
// path).
func WriteAll(database *db.Database, reqs []db.WriteRequest, subs db.Subscriptions) PutResult {
	objects := make([]db.WriteResult, 0, len(reqs))
	someErr := false
	allErr := true

	for _, req := range reqs {
		status := 0
		if err := database.WriteCharacteristic(req, subs); err != nil {
			status = statusFromError(err)
			someErr = true
		} else {
			allErr = false
		}
		objects = append(objects, db.WriteResult{AID: req.AID, IID: req.IID, Status: status})
	}

	switch {
	case len(reqs) == 0 || allErr:
		return PutResult{Objects: objects, Code: 400}
	case someErr:
		return PutResult{Objects: objects, Code: 207}
	default:
		return PutResult{Code: 204}
	}
}

// statusFromError maps an error returned by package db into the HAP status code
// that belongs in a per-object response: HAPStatus errors carry their code
// through unchanged; an unknown (aid,iid) surfaces as "resource does not exist";
// anything else is an opaque communication failure.
func statusFromError(err error) int {
	he, ok := haperr.As(err)
	if !ok {
		return statusServiceCommunicationFailure
	}
	switch he.Kind {
	case haperr.KindHAPStatus:
		return he.Code
	case haperr.KindHTTPStatus:
		if he.Code == 404 {
			return statusResourceDoesNotExist
		}
		return statusServiceCommunicationFailure
	default:
		return statusServiceCommunicationFailure
	}
}
