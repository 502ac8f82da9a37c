package testutils

import (
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// Fixture identifiers shared across tests
const (
	TestMasterUID    = "dm_gary"
	TestCharacterUID = "char_thorin"
	TestNPCUID       = "npc_barkeep"
)

// CreateTestGoblin returns an SRD-style goblin record without an ID
func CreateTestGoblin() *entities.Monster {
	return &entities.Monster{
		AuthorUID:  TestMasterUID,
		Name:       "Goblin",
		MaxHP:      7,
		HP:         7,
		ArmorClass: 15,
		Speed:      30,
		Weapons:    []string{"scimitar", "shortbow"},
	}
}

// CreateTestOgre returns a tougher monster for damage tests
func CreateTestOgre() *entities.Monster {
	return &entities.Monster{
		AuthorUID:  TestMasterUID,
		Name:       "Ogre",
		MaxHP:      59,
		HP:         59,
		ArmorClass: 11,
		Speed:      40,
		Weapons:    []string{"greatclub"},
	}
}
