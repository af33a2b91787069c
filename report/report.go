// SPDX-License-Identifier: MIT
//
// Package report prints search runs to a terminal: a banner per strategy,
// one "visiting X" line per visited city, then the route and its cost.
//
//	---
//	--- A-STAR (A*)
//	---
//	visiting A
//	visiting C
//	visiting D
//	A -> C -> D (cost 23)
//
// Styling uses lipgloss; WithNoColor forces plain ASCII output.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/search"
)

var titles = map[search.Algorithm]string{
	search.BreadthFirst:       "BREADTH-FIRST SEARCH",
	search.DepthLimited:       "DEPTH-LIMITED SEARCH",
	search.IterativeDeepening: "ITERATIVE DEEPENING SEARCH",
	search.Greedy:             "GREEDY BEST FIRST SEARCH",
	search.NearestFirst:       "NEAREST-NEIGHBOUR FIRST SEARCH",
	search.AStar:              "A-STAR (A*)",
	search.Dijkstra:           "DIJKSTRA",
}

// Title returns the banner text for a strategy.
func Title(a search.Algorithm) string {
	if t, ok := titles[a]; ok {
		return t
	}

	return a.String()
}

type styles struct {
	banner lipgloss.Style
	visit  lipgloss.Style
	route  lipgloss.Style
	cost   lipgloss.Style
	fail   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner: r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		visit:  r.NewStyle().Foreground(lipgloss.Color("241")),
		route:  r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		cost:   r.NewStyle().Foreground(lipgloss.Color("39")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithNoColor disables ANSI styling when on is true.
func WithNoColor(on bool) Option {
	return func(r *Reporter) { r.noColor = on }
}

// WithVisits toggles the per-city "visiting" lines (default on).
func WithVisits(on bool) Option {
	return func(r *Reporter) { r.visits = on }
}

// Reporter writes search progress to w. It is not safe for concurrent use.
type Reporter struct {
	w       io.Writer
	noColor bool
	visits  bool
	st      styles
}

// New creates a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w, visits: true}
	for _, opt := range opts {
		opt(r)
	}

	renderer := lipgloss.NewRenderer(w)
	if r.noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	r.st = newStyles(renderer)

	return r
}

// Banner prints the three-line section header for a.
func (r *Reporter) Banner(a search.Algorithm) {
	fmt.Fprintln(r.w, r.st.banner.Render("---"))
	fmt.Fprintln(r.w, r.st.banner.Render("--- "+Title(a)))
	fmt.Fprintln(r.w, r.st.banner.Render("---"))
}

// Visit prints "visiting <name>". Its signature matches the OnVisit hooks
// of the search packages so it can be passed to them directly.
func (r *Reporter) Visit(name string, _ int) error {
	if !r.visits {
		return nil
	}
	_, err := fmt.Fprintln(r.w, r.st.visit.Render("visiting "+name))

	return err
}

// Outcome prints the route line, or the failure for a search that ended
// without one.
func (r *Reporter) Outcome(res *search.Result, err error) {
	switch {
	case err == nil && res.Found():
		fmt.Fprintf(r.w, "%s %s\n",
			r.st.route.Render(res.Path.String()),
			r.st.cost.Render(fmt.Sprintf("(cost %g)", res.Path.Cost())),
		)
	case errors.Is(err, core.ErrNoPath):
		fmt.Fprintln(r.w, r.st.fail.Render("no route found"))
	case err != nil:
		fmt.Fprintln(r.w, r.st.fail.Render("error: "+err.Error()))
	default:
		fmt.Fprintln(r.w, r.st.fail.Render("no route found"))
	}
}

// Run prints the banner, runs req with Visit wired in, and prints the
// outcome. A not-found search is reported, not returned; other errors
// are both printed and returned.
func (r *Reporter) Run(ctx context.Context, req search.Request) (*search.Result, error) {
	r.Banner(req.Algorithm)
	req.OnVisit = r.Visit
	res, err := search.Run(ctx, req)
	r.Outcome(res, err)
	if errors.Is(err, core.ErrNoPath) {
		return res, nil
	}

	return res, err
}

// RunAll runs req once per strategy in algos, in order, and returns the
// results keyed by strategy. It stops at the first error that is not a
// not-found.
func (r *Reporter) RunAll(ctx context.Context, req search.Request, algos ...search.Algorithm) (map[search.Algorithm]*search.Result, error) {
	if len(algos) == 0 {
		algos = search.All()
	}
	out := make(map[search.Algorithm]*search.Result, len(algos))
	for _, a := range algos {
		req.Algorithm = a
		res, err := r.Run(ctx, req)
		if err != nil {
			return out, err
		}
		out[a] = res
	}

	return out, nil
}
