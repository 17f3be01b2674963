package record

import (
	"github.com/kiroku-dev/sensekibot/internal/repository"
)

// Repository is a local interface for record repository operations.
// It embeds repository.Records so fakes can be declared in this package.
type Repository interface {
	repository.Records
}
