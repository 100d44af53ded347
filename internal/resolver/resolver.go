// Package resolver decides which language a page view should use and
// applies the resulting redirect, storage write, link rewriting and hint.
//
// A run evaluates, in order:
//
//  1. an explicit ?lang= on a localized page,
//  2. the gateway redirect or recommendation hint,
//  3. reinforcement of the stored preference from the path,
//  4. wiring of language switch and setter elements.
//
// A redirect ends the run.
package resolver

import (
	"go.uber.org/zap"

	"finitefield.org/hanko-langgate/internal/lang"
)

// Resolver evaluates one page view.
type Resolver struct {
	env    Env
	doc    Document
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for decision traces.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a Resolver over env and doc.
func New(env Env, doc Document, opts ...Option) *Resolver {
	r := &Resolver{env: env, doc: doc, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Outcome summarises what a run did. Stored is the last language persisted
// during the run, if any.
type Outcome struct {
	Redirected bool
	Target     string
	Stored     lang.Language
	Hint       string
}

// run carries the inputs read once at the start of a page view.
type run struct {
	loc      lang.Location
	pathLang lang.Language
	hasPath  bool
	query    lang.Language
	hasQuery bool
	out      Outcome
}

// Run evaluates the page view and applies its side effects.
func (r *Resolver) Run() Outcome {
	st := &run{}
	if loc, ok := r.env.Location(); ok {
		st.loc = loc
		st.pathLang, st.hasPath = lang.FromPath(loc.Path)
		st.query, st.hasQuery = lang.FromQuery(loc.RawQuery)
	} else {
		r.logger.Debug("location unavailable")
	}

	if r.queryOverride(st) || r.gateway(st) {
		return st.out
	}
	if st.hasPath {
		r.store(st, st.pathLang)
	}
	r.wireLinks(st)
	return st.out
}

func (r *Resolver) queryOverride(st *run) bool {
	if !st.hasPath || !st.hasQuery {
		return false
	}
	r.store(st, st.query)
	if st.query == st.pathLang {
		return false
	}
	r.redirect(st, lang.SwapPath(st.loc.Path, st.query)+lang.StripQuery(st.loc.RawQuery)+st.loc.Hash())
	return true
}

func (r *Resolver) gateway(st *run) bool {
	if !r.doc.IsGateway() {
		return false
	}
	if st.hasQuery {
		r.store(st, st.query)
		r.redirect(st, st.query.Root()+lang.StripQuery(st.loc.RawQuery)+st.loc.Hash())
		return true
	}
	if raw, ok := r.env.StoredPreference(); ok {
		if stored, ok := lang.Parse(raw); ok {
			r.redirect(st, stored.Root())
			return true
		}
	}

	locale, _ := r.env.BrowserLocale()
	recommended := lang.Recommend(locale)
	msg := lang.HintMessage(recommended)
	if r.doc.SetHint(msg) {
		st.out.Hint = msg
	}
	r.logger.Debug("gateway hint", zap.String("locale", locale), zap.String("recommended", string(recommended)))
	return false
}

func (r *Resolver) wireLinks(st *run) {
	for _, el := range r.doc.SwitchLinks() {
		raw, _ := el.Attr(SwitchAttr)
		target, ok := lang.Parse(raw)
		if !ok {
			continue
		}
		el.SetHref(lang.SwapPath(st.loc.Path, target))
		el.OnSelect(r.selector(target))
		if st.hasPath {
			el.SetActive(target == st.pathLang)
		}
	}
	for _, el := range r.doc.Setters() {
		raw, _ := el.Attr(SetterAttr)
		target, ok := lang.Parse(raw)
		if !ok {
			continue
		}
		el.OnSelect(r.selector(target))
	}
}

func (r *Resolver) selector(target lang.Language) func() {
	return func() {
		if err := r.env.SetStoredPreference(target); err != nil {
			r.logger.Debug("store preference on select", zap.String("lang", string(target)), zap.Error(err))
		}
	}
}

func (r *Resolver) store(st *run, l lang.Language) {
	if err := r.env.SetStoredPreference(l); err != nil {
		r.logger.Debug("store preference", zap.String("lang", string(l)), zap.Error(err))
		return
	}
	st.out.Stored = l
}

func (r *Resolver) redirect(st *run, target string) {
	r.logger.Debug("redirect", zap.String("from", st.loc.Path), zap.String("to", target))
	r.env.Redirect(target)
	st.out.Redirected = true
	st.out.Target = target
}
