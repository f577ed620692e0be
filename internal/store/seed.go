package store

import "github.com/google/uuid"

// Fixed ids shared by the per-collection seed datasets so that seeded
// transactions, leases, and tenants reference seeded properties.
var (
	SeedPropertyTiara     = uuid.MustParse("5b1f8f6e-9c1d-4a76-8b3a-111111111111")
	SeedPropertyOceanView = uuid.MustParse("5b1f8f6e-9c1d-4a76-8b3a-222222222222")

	SeedTenantJohn = uuid.MustParse("7e2a4c9b-3f5d-4e18-9c6f-111111111111")
	SeedTenantJane = uuid.MustParse("7e2a4c9b-3f5d-4e18-9c6f-222222222222")
)
