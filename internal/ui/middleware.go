package ui

import (
	"net/http"

	"github.com/bayuwidiasantoso/gudang/internal/guard"
)

// Guard applies the route access policy to every navigation. The session is
// initialized lazily here: the first request performs the restoration and
// concurrent requests wait on the same attempt.
func (ui *UI) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := ui.session.Init(r.Context()); err != nil {
			// A failed restoration leaves the session anonymous; the
			// guard then routes to login as usual.
			ui.logger.Error("session restore failed", "error", err)
		}

		policy, ok := ui.routes.Match(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		requested := r.URL.Path
		if r.URL.RawQuery != "" {
			requested += "?" + r.URL.RawQuery
		}

		decision := guard.Decide(policy, ui.session, requested)
		if decision.Allowed {
			ui.metrics.GuardDecisions.WithLabelValues("allow").Inc()
			next.ServeHTTP(w, r)
			return
		}

		outcome := "redirect_landing"
		if decision.Target != guard.LandingPath {
			outcome = "redirect_login"
		}
		ui.metrics.GuardDecisions.WithLabelValues(outcome).Inc()
		ui.logger.Debug("navigation redirected",
			"route", policy.Name, "requested", requested, "target", decision.Target)
		http.Redirect(w, r, decision.Target, http.StatusSeeOther)
	})
}
