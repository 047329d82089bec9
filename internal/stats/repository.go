package stats

import (
	"github.com/lukeramljak/charsibot/internal/repository"
)

// Repository is a local interface for stats repository operations.
// It embeds repository.Stats so tests in this package can supply fakes.
type Repository interface {
	repository.Stats
}
