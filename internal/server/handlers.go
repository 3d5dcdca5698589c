// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/katalvlaran/tsalign/distance"
	"github.com/katalvlaran/tsalign/dtw"
	"github.com/katalvlaran/tsalign/internal/metrics"
	"github.com/katalvlaran/tsalign/series"
	"github.com/katalvlaran/tsalign/table"
)

// CompareRequest is the body of POST /v1/compare. Each side is given either
// as a numeric array or as a table; a table wins when both are present.
type CompareRequest struct {
	Metric             string       `json:"metric,omitempty"`
	Reference          [][]float64  `json:"reference,omitempty"`
	Target             [][]float64  `json:"target,omitempty"`
	ReferenceTable     *table.Table `json:"reference_table,omitempty"`
	TargetTable        *table.Table `json:"target_table,omitempty"`
	ReferenceTimestamp string       `json:"reference_timestamp,omitempty"`
	TargetTimestamp    string       `json:"target_timestamp,omitempty"`
}

// lengths returns the point counts of both sides.
func (r CompareRequest) lengths() (int, int) {
	l, n := len(r.Reference), len(r.Target)
	if r.ReferenceTable != nil {
		l = len(r.ReferenceTable.Rows)
	}
	if r.TargetTable != nil {
		n = len(r.TargetTable.Rows)
	}

	return l, n
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	log := s.logger.With("request_id", RequestID(r.Context()))

	var req CompareRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("malformed request: %w", err))
		return
	}

	if l, n := req.lengths(); l*n > s.cfg.Server.MaxCells {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Errorf("comparison of %d×%d points exceeds %d cells", l, n, s.cfg.Server.MaxCells))
		return
	}

	name := req.Metric
	if name == "" {
		name = s.cfg.Metric
	}
	m, err := distance.ParseMetric(name)
	if err != nil {
		writeEnvelope(w, table.Envelope{Status: table.StatusError, ErrorMessage: err.Error(), Err: err})
		return
	}

	var env table.Envelope
	if req.ReferenceTable != nil || req.TargetTable != nil {
		env = s.compareTables(r, req, m)
	} else {
		env = compareArrays(req, m)
	}
	if !env.OK() {
		log.Warn("comparison failed", "metric", m, "error", env.ErrorMessage)
	}
	writeEnvelope(w, env)
}

// compareTables routes table input through table.Comparator. A side given
// as an array is converted to a table without a timestamp column.
func (s *Server) compareTables(r *http.Request, req CompareRequest, m distance.Metric) table.Envelope {
	ref, tgt := req.ReferenceTable, req.TargetTable
	refStamp, tgtStamp := req.ReferenceTimestamp, req.TargetTimestamp
	if ref == nil {
		t := table.FromSeries(series.FromRows(req.Reference))
		ref, refStamp = &t, table.NoTimestamp
	}
	if tgt == nil {
		t := table.FromSeries(series.FromRows(req.Target))
		tgt, tgtStamp = &t, table.NoTimestamp
	}

	c := table.NewComparator(
		table.WithMetric(m),
		table.WithReferenceTimestamp(refStamp),
		table.WithTargetTimestamp(tgtStamp),
		table.WithLogger(s.logger.With("request_id", RequestID(r.Context()))),
		table.WithObserver(metrics.Recorder{}),
	)

	return c.Compare(r.Context(), *ref, *tgt)
}

func compareArrays(req CompareRequest, m distance.Metric) table.Envelope {
	ref, tgt := series.FromRows(req.Reference), series.FromRows(req.Target)

	start := time.Now()
	res, err := dtw.CompareMetric(ref, tgt, m)
	metrics.Recorder{}.ObserveComparison(m, len(ref)*len(tgt), time.Since(start), err)
	if err != nil {
		return table.Envelope{Status: table.StatusError, ErrorMessage: err.Error(), Err: err}
	}

	return table.Envelope{Status: table.StatusSuccess, Result: res}
}

// writeEnvelope maps success to 200 and any comparison failure to 422.
func writeEnvelope(w http.ResponseWriter, env table.Envelope) {
	code := http.StatusOK
	if !env.OK() {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, env)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, table.Envelope{Status: table.StatusError, ErrorMessage: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
