package entities

// Monster is a session-owned combatant with a full record
type Monster struct {
	ID                  string   `json:"id"`
	AuthorUID           string   `json:"author_uid"`
	Name                string   `json:"name"`
	MaxHP               int32    `json:"max_hp"`
	HP                  int32    `json:"hp"`
	ArmorClass          int32    `json:"armor_class"`
	Enchantments        []string `json:"enchantments"`
	IsReactionActivable bool     `json:"is_reaction_activable"`
	Speed               int32    `json:"speed"`
	Weapons             []string `json:"weapons"`
	Effects             []Effect `json:"effects"`

	// TemplateKey is the SRD monster this record was seeded from, if any
	TemplateKey string `json:"template_key,omitempty"`
}

// Effect is a status applied to a monster. Duration is in rounds.
type Effect struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Duration    *int32 `json:"duration,omitempty"`
}

// ClampHP keeps hp within [0, MaxHP]
func (m *Monster) ClampHP() {
	if m.MaxHP < 0 {
		m.MaxHP = 0
	}
	if m.HP < 0 {
		m.HP = 0
	}
	if m.HP > m.MaxHP {
		m.HP = m.MaxHP
	}
}

// Clone returns a deep copy of the monster
func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}

	out := *m
	out.Enchantments = append([]string(nil), m.Enchantments...)
	out.Weapons = append([]string(nil), m.Weapons...)
	out.Effects = make([]Effect, len(m.Effects))
	for i, e := range m.Effects {
		out.Effects[i] = Effect{Name: e.Name, Description: e.Description, Duration: clonePtr(e.Duration)}
	}
	return &out
}
