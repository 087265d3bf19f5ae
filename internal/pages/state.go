// Package pages holds one view-model per page. A page owns its state, talks to the
// backend through small source interfaces and is driven by Command messages.
// Snapshots handed to renderers are copies and never alias page state.
package pages

import (
	"net/http"
	"sort"
	"strings"

	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

// Status is the loading state of a page.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// User-visible messages. Causes are never distinguished.
const (
	MsgLoadArtisans  = "Failed to load artisans. Please try again later."
	MsgLoadProfile   = "Failed to load artisan profile. Please try again later."
	MsgLoadReviews   = "Failed to load reviews."
	MsgFetchArtisans = "Failed to fetch artisans"
	MsgSaveArtisan   = "Failed to save artisan"
	MsgDeleteArtisan = "Failed to delete artisan"
	MsgSubmitReview  = "Failed to submit review"
	MsgLogin         = "Login failed. Please check your credentials and try again."
	MsgRegister      = "Registration failed. Please try again."
)

// NoticeKind tells success and failure notices apart.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message shown after an action.
type Notice struct {
	Kind  NoticeKind `json:"kind"`
	Title string     `json:"title"`
	Text  string     `json:"text"`
}

func successNotice(text string) *Notice {
	return &Notice{Kind: NoticeSuccess, Title: "Success", Text: text}
}

func errorNotice(text string) *Notice {
	return &Notice{Kind: NoticeError, Title: "Error", Text: text}
}

func (n *Notice) clone() *Notice {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

// loadState tracks the idle/loading/loaded/error machine of one page.
// seq identifies the latest load; results of older loads are dropped.
type loadState struct {
	status Status
	errMsg string
	seq    uint64
}

func newLoadState() loadState {
	return loadState{status: StatusIdle}
}

func (l *loadState) begin() uint64 {
	l.seq++
	l.status = StatusLoading
	l.errMsg = ""
	return l.seq
}

func (l *loadState) stale(seq uint64) bool {
	return seq != l.seq
}

func (l *loadState) succeed() {
	l.status = StatusLoaded
	l.errMsg = ""
}

func (l *loadState) fail(msg string) {
	l.status = StatusError
	l.errMsg = msg
}

func errUnsupported(page string, cmd Command) error {
	return apperrors.NewDomainError("UNSUPPORTED_COMMAND",
		page+" page does not handle "+commandName(cmd), http.StatusBadRequest, nil)
}

func errUnknownField(field string) error {
	return apperrors.NewValidationError("unknown field", map[string]any{"field": field})
}

func errMissingFields(missing []string) error {
	return apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
}

// fieldSet binds form field names to their storage.
type fieldSet map[string]*string

func (f fieldSet) set(field, value string) error {
	ref, ok := f[strings.TrimSpace(field)]
	if !ok {
		return errUnknownField(field)
	}
	*ref = value
	return nil
}

// missing lists the required fields that are blank, sorted.
func (f fieldSet) missing(required ...string) []string {
	var out []string
	for _, name := range required {
		if ref, ok := f[name]; ok && strings.TrimSpace(*ref) == "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
