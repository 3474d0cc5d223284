package service

import "news-dashboard/internal/domain"

// GateDecision is the auth gate's verdict for a protected view.
type GateDecision string

const (
	DecisionRender          GateDecision = "render"
	DecisionRedirectToLogin GateDecision = "redirect-to-login"
)

// Decide reports whether a protected view renders or redirects to the
// sign-in view. Pure; callers re-evaluate it whenever the session changes,
// not only at initial mount.
func Decide(session *domain.Session) GateDecision {
	if session == nil || session.UserID == "" {
		return DecisionRedirectToLogin
	}
	return DecisionRender
}
