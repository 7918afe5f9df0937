package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/natworks/chatdash/internal/analysis"
	"github.com/natworks/chatdash/internal/chatlog"
	"github.com/natworks/chatdash/internal/identity"
	"github.com/natworks/chatdash/internal/table"
)

// userFacingParseFailure is the only wording parse failures leave the server
// with; the real cause stays in the logs keyed by request id.
const userFacingParseFailure = "could not analyze this chat"

// AnalyzeResponse is the stable JSON shape of a successful analysis.
type AnalyzeResponse struct {
	RequestID string             `json:"request_id"`
	Source    string             `json:"source"`
	Messages  int                `json:"messages"`
	Authors   identity.Partition `json:"authors"`
	Report    *analysis.Report   `json:"report"`
}

// analyze handles one multipart upload: `file` is the raw export, `renames`
// an optional JSON object mapping canonical phone identifiers to display
// names, `year` an optional filter.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if s.rateLimited() {
		writeError(w, http.StatusTooManyRequests, "too many uploads, slow down")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUpload)
	if err := r.ParseMultipartForm(s.cfg.MaxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed multipart request")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	var renames map[string]string
	if v := r.FormValue("renames"); v != "" {
		if err := json.Unmarshal([]byte(v), &renames); err != nil {
			writeError(w, http.StatusBadRequest, "renames must be a JSON object of phone to name")
			return
		}
	}

	year := 0
	if v := r.FormValue("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be numeric")
			return
		}
	}

	result, err := chatlog.Parse(raw, chatlog.Options{
		ScanWindow:   s.cfg.ScanWindow,
		AlertPhrases: s.set.Alerts,
	})
	if err != nil {
		if isParseFailure(err) {
			slog.Warn("rejecting unparseable upload", "request_id", requestID, "cause", err)
			writeError(w, http.StatusUnprocessableEntity, userFacingParseFailure)
			return
		}
		slog.Error("analyze failed", "request_id", requestID, "cause", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	t := table.Normalize(result.Records, result.Dialect.String())
	identity.Rename(t, renames)
	if year != 0 {
		t = t.FilterYear(year)
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		RequestID: requestID,
		Source:    t.Source,
		Messages:  t.Len(),
		Authors:   identity.Split(t.Authors()),
		Report:    analysis.BuildReport(t, s.set),
	})
}

func isParseFailure(err error) bool {
	return errors.Is(err, chatlog.ErrUnrecognizedFormat) ||
		errors.Is(err, chatlog.ErrAmbiguousDateFormat) ||
		errors.Is(err, chatlog.ErrInvalidEncoding)
}
