package generator

import (
	"context"

	"github.com/toyz/stubgen/internal/models"
)

// StubGenerator produces the request, response and exception wrappers of a service interface
type StubGenerator interface {
	// Plan builds every unit in memory without touching the file system
	Plan(iface *models.ServiceInterface) (*models.GenerationResult, error)
	// Generate plans the units and writes them into dest
	Generate(ctx context.Context, iface *models.ServiceInterface, dest string) (*models.GenerationResult, error)
}
