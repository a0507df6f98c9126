// Package dialogue turns user input into templated responses and keeps
// the per-session conversation memory.
package dialogue

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/corey/boli/internal/domain/heuristics"
	"github.com/corey/boli/internal/ports"
)

// Language preference modes. Mixed follows the detected input language.
const (
	PreferKumaoni  = "kumaoni"
	PreferHinglish = "hinglish"
	PreferMixed    = "mixed"
)

// ErrInvalidPreference is returned for an unrecognized preference name.
var ErrInvalidPreference = fmt.Errorf("preference must be %q, %q or %q", PreferKumaoni, PreferHinglish, PreferMixed)

// flushEvery is the exchange interval at which the session is flushed
// to the history sink mid-conversation.
const flushEvery = 10

// Response is one bot reply. Translation carries the template's other
// side, so callers can always show both languages.
type Response struct {
	Text        string `json:"text"`
	Language    string `json:"language"`
	Intent      string `json:"intent"`
	Translation string `json:"translation"`
}

// Responder selects intent-keyed response templates and records the
// conversation. history may be nil for throwaway sessions; flushes are
// then skipped. Not safe for concurrent use.
type Responder struct {
	responses ports.ResponseSet
	detector  *heuristics.Detector
	history   ports.SessionSink

	preference string
	rng        *rand.Rand
	now        func() time.Time

	session *ports.Session
}

// New creates a responder with a fresh session. The session ID is the
// start time in yyyymmddhhmmss form.
func New(responses ports.ResponseSet, detector *heuristics.Detector, history ports.SessionSink) *Responder {
	r := &Responder{
		responses:  responses,
		detector:   detector,
		history:    history,
		preference: PreferMixed,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
	r.resetSession()
	return r
}

// SetClock replaces the time source and restarts the session. Used by
// tests.
func (r *Responder) SetClock(now func() time.Time) {
	r.now = now
	r.resetSession()
}

// SetSeed makes template selection deterministic. Used by tests.
func (r *Responder) SetSeed(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

func (r *Responder) resetSession() {
	start := r.now()
	r.session = &ports.Session{
		SessionID: start.Format("20060102150405"),
		StartTime: start,
	}
}

// SessionID returns the current conversation session identifier.
func (r *Responder) SessionID() string { return r.session.SessionID }

// Exchanges returns the number of exchanges in the current session.
func (r *Responder) Exchanges() int { return len(r.session.Exchanges) }

// Preference returns the active language preference.
func (r *Responder) Preference() string { return r.preference }

// SetPreference switches the response language mode.
func (r *Responder) SetPreference(pref string) error {
	switch pref {
	case PreferKumaoni, PreferHinglish, PreferMixed:
		r.preference = pref
		return nil
	default:
		return fmt.Errorf("set preference %q: %w", pref, ErrInvalidPreference)
	}
}

// Respond classifies the input, picks a random template for the intent
// (falling back to the unknown bucket), chooses the reply side per the
// language preference and records the exchange. Every 10th exchange
// the session is flushed to the history sink.
func (r *Responder) Respond(input string) (Response, error) {
	inputLang := r.detector.Detect(input)
	intent := heuristics.DetectIntent(input)

	templates, ok := r.responses[intent]
	if !ok || len(templates) == 0 {
		templates = r.responses[heuristics.IntentUnknown]
	}
	if len(templates) == 0 {
		return Response{}, fmt.Errorf("respond: no templates for intent %q and no unknown fallback", intent)
	}
	tmpl := templates[r.rng.Intn(len(templates))]

	lang := r.preference
	if lang == PreferMixed {
		lang = inputLang
	}

	resp := Response{Intent: intent, Language: lang}
	if lang == heuristics.LangKumaoni {
		resp.Text, resp.Translation = tmpl.Kumaoni, tmpl.Hinglish
	} else {
		resp.Text, resp.Translation = tmpl.Hinglish, tmpl.Kumaoni
	}

	r.session.Exchanges = append(r.session.Exchanges, ports.Exchange{
		User:        input,
		Language:    inputLang,
		Intent:      intent,
		Timestamp:   r.now(),
		Bot:         resp.Text,
		BotLanguage: resp.Language,
	})

	if len(r.session.Exchanges)%flushEvery == 0 {
		if err := r.Flush(); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// Flush persists the current session. Empty sessions are skipped. The
// session keeps accumulating afterwards; flushing again replaces the
// stored copy.
func (r *Responder) Flush() error {
	if r.history == nil || len(r.session.Exchanges) == 0 {
		return nil
	}
	if err := r.history.UpsertSession(r.session); err != nil {
		return fmt.Errorf("flush session %s: %w", r.session.SessionID, err)
	}
	return nil
}
