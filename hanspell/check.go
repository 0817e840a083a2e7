// Package hanspell checks Korean text with the 부산대 and DAUM spell
// checkers, merges their reports with the user's local overlays and turns
// the result into located, fixable matches.
package hanspell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/Alfex4936/hanspell/internal/config"
	"github.com/Alfex4936/hanspell/internal/model"
	"github.com/Alfex4936/hanspell/internal/net"
	"github.com/Alfex4936/hanspell/internal/overlay"
	"github.com/Alfex4936/hanspell/internal/speller"
	"github.com/Alfex4936/hanspell/internal/util"
)

// Checker gathers reports from the remote services and the local overlays.
type Checker struct {
	Spellers map[model.Service]speller.Speller
	Overlay  *overlay.Store // nil disables local overlays
	Logger   *slog.Logger
	Timeout  time.Duration // per service; 0 means config.DefaultTimeout
}

// NewChecker wires the real services and overlay files described by cfg.
func NewChecker(cfg *config.Config, logger *slog.Logger) (*Checker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := net.Default()
	if err != nil {
		return nil, err
	}
	return &Checker{
		Spellers: map[model.Service]speller.Speller{
			model.PNU:  &speller.PNU{URL: cfg.PNU.URL, Client: client},
			model.Daum: &speller.Daum{URL: cfg.Daum.URL, Client: client},
		},
		Overlay: overlay.New(cfg.Paths(), logger),
		Logger:  logger,
		Timeout: cfg.Timeout(),
	}, nil
}

// CheckResult is the consolidated outcome of one check.
type CheckResult struct {
	Service model.Service
	Typos   []*model.Typo
	Failed  []model.Service // services that failed during a combined check
	Notices []string        // overlay problems worth telling the user
}

// Partial reports whether some of the text went unchecked.
func (r *CheckResult) Partial() bool { return len(r.Failed) > 0 }

// Message is the status line shown to the user.
func (r *CheckResult) Message() string {
	if !r.Partial() {
		return "맞춤법 검사를 마쳤습니다."
	}
	labels := make([]string, len(r.Failed))
	for i, s := range r.Failed {
		labels[i] = s.Label()
	}
	return strings.Join(labels, ", ") + " 서비스 접속 오류로 일부 문장은 맞춤법 검사를 하지 못했습니다."
}

// Check sends text to svc (model.All for both services) and consolidates
// the reports with the local overlays.
//
// With a single service its failure fails the check. With model.All a
// failing service only makes the result partial; both failing is an error.
// If ctx ends before the services are done nothing is returned.
func (c *Checker) Check(ctx context.Context, text string, svc model.Service) (*CheckResult, error) {
	if ctx == nil {
		return nil, errors.New("hanspell: ctx is nil")
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoDocument
	}
	logger := c.logger()

	services := svc.Members()
	got := make([][]*model.Typo, len(services))
	errs := make([]error, len(services))

	var g errgroup.Group
	for i, s := range services {
		sp, ok := c.Spellers[s]
		if !ok {
			errs[i] = &ServiceError{Service: s, Err: ErrNoSpeller}
			continue
		}
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, c.timeout())
			defer cancel()

			start := time.Now()
			err := sp.Check(cctx, text, func(ts []*model.Typo) { got[i] = append(got[i], ts...) })
			if err != nil {
				errs[i] = &ServiceError{Service: s, Err: err}
			}
			logger.Debug("hanspell: service done", "service", s, "typos", len(got[i]), "took", time.Since(start), "err", err)
			// Never cancel the sibling: its reports are still wanted.
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &CheckResult{Service: svc}
	var raw []*model.Typo
	var failures []error
	for i, s := range services {
		raw = append(raw, got[i]...)
		if errs[i] != nil {
			res.Failed = append(res.Failed, s)
			failures = append(failures, errs[i])
			logger.Warn("hanspell: service failed", "service", s, "err", errs[i])
		}
	}
	if len(failures) == len(services) {
		if len(failures) == 1 {
			return nil, failures[0]
		}
		return nil, errors.Join(failures...)
	}

	for _, t := range raw {
		if t.Info == "" {
			t.Info = infoFor(t.Category, logger)
		}
	}

	if c.Overlay != nil {
		res.Notices = c.Overlay.Reload()
		raw = append(raw, c.Overlay.Typos()...)
	}

	typos := Consolidate(raw, svc)
	if c.Overlay != nil {
		kept := typos[:0]
		for _, t := range typos {
			if c.Overlay.Ignored(t.Token) {
				logger.Debug("hanspell: ignored", "token", t.Token)
				continue
			}
			kept = append(kept, t)
		}
		typos = append(kept, c.Overlay.Rules()...)
	}
	res.Typos = typos
	return res, nil
}

// CheckDocument checks text and, only on success, replaces the cached typo
// set of id. A failed or cancelled check leaves the cache as it was.
func (c *Checker) CheckDocument(ctx context.Context, docs *Documents, id DocumentID, text string, svc model.Service) (*CheckResult, error) {
	res, err := c.Check(ctx, text, svc)
	if err != nil {
		return nil, err
	}
	docs.Set(id, res.Typos)
	return res, nil
}

// IgnoreTypo adds token to the ignore list and drops it from the cached set
// of id. The caller refreshes the document afterwards.
func (c *Checker) IgnoreTypo(docs *Documents, id DocumentID, token string) error {
	if c.Overlay != nil {
		if err := c.Overlay.AppendIgnore(token); err != nil {
			return fmt.Errorf("hanspell: ignore %q: %w", token, err)
		}
	}
	docs.RemoveToken(id, token)
	return nil
}

// Summarize locates res in text and builds the serialisable report:
// matches, the text with every first suggestion applied, and counts.
func Summarize(text string, res *CheckResult) *model.Result {
	matches := Locate(text, res.Typos)
	corrected := ApplyEdits(text, FixAll(matches))

	failed := make([]string, len(res.Failed))
	for i, s := range res.Failed {
		failed[i] = s.String()
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return &model.Result{
		Service:      res.Service.String(),
		Original:     text,
		Corrected:    corrected,
		EditDistance: util.Levenshtein(text, corrected),
		CharCount:    utf8.RuneCountInString(text),
		ErrorCount:   len(matches),
		Typos:        res.Typos,
		Matches:      matches,
		Failed:       failed,
		Notices:      res.Notices,
		Message:      res.Message(),
	}
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Checker) timeout() time.Duration {
	if c.Timeout <= 0 {
		return config.DefaultTimeout
	}
	return c.Timeout
}
