package external

import (
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

// MonsterTemplate is an SRD stat block a session monster can be seeded from
type MonsterTemplate struct {
	Key             string
	Name            string
	Type            string
	ArmorClass      int32
	HitPoints       int32
	HitDice         string
	ChallengeRating float32
	Actions         []string
}

// MonsterTemplateRef is one entry of the template catalogue
type MonsterTemplateRef struct {
	Key  string
	Name string
}

// Monster builds a fresh session monster at full hp. The session assigns
// the ID when the monster joins.
func (t *MonsterTemplate) Monster(authorUID string) *entities.Monster {
	return &entities.Monster{
		AuthorUID:   authorUID,
		Name:        t.Name,
		MaxHP:       t.HitPoints,
		HP:          t.HitPoints,
		ArmorClass:  t.ArmorClass,
		Weapons:     append([]string(nil), t.Actions...),
		TemplateKey: t.Key,
	}
}
