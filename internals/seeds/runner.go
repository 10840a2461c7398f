package seeds

import (
	"gorm.io/gorm"

	delegations "hrdelegation_backend/internals/seeds/delegations"
)

func RunAllSeeds(db *gorm.DB) {
	delegations.SeedDelegationsFromJSON(db, "internals/seeds/delegations/data_delegations.json")
}
