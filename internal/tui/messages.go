package tui

import "github.com/rgehrsitz/naegele/internal/domain"

// ResultMsg carries a finished computation back to the model. Exactly one of
// Result and Err is set.
type ResultMsg struct {
	Result *domain.Result
	Err    error
}
