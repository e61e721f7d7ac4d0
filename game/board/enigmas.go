package board

import "math/rand"

// Enigma is a three-option riddle with five progressive hints. The correct
// option is not fixed at authoring time: AssignEnigma randomizes it per game
// so no player can learn the answers across sessions.
type Enigma struct {
	ID           int      `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Hints        []string `json:"hints"`
	Theme        string   `json:"theme"`
	CorrectIndex int      `json:"correct_index"`
}

var enigmas = []Enigma{
	{
		ID:       1,
		Question: "Three sages claim to hold the Crystal of Truth. Which one speaks true?",
		Options: []string{
			"The Sage of the North: 'I hold the crystal and never lie'",
			"The Sage of the South: 'The Sage of the North lies; the crystal is mine'",
			"The Sage of the East: 'Both lie; the crystal rests with me'",
		},
		Hints: []string{
			"One sage always tells the truth; the others always lie.",
			"The true bearer never lies about holding it.",
			"If the Sage of the North lies, the crystal is not his.",
			"Weigh the contradictions between the three claims.",
			"Only one can speak without contradicting himself.",
		},
		Theme: "logic",
	},
	{
		ID:       2,
		Question: "Three doors stand guarded by spirits. Which one leads to the treasure?",
		Options: []string{
			"The Red Door, wreathed in eternal flame",
			"The Blue Door, covered in arcane symbols",
			"The Green Door, wrapped in enchanted vines",
		},
		Hints: []string{
			"The eternal flames have guarded treasure for a thousand years.",
			"Arcane symbols are often visual traps.",
			"Enchanted vines grow where natural power gathers.",
			"The most dangerous door usually hides the greatest prize.",
			"The old mages favored fire to protect their secrets.",
		},
		Theme: "intuition",
	},
	{
		ID:       3,
		Question: "The oracle foretold: 'When three ages meet, the truth is revealed'. Which age has come?",
		Options: []string{
			"The Age of Dragons, when winged serpents ruled the skies",
			"The Age of Titans, when giants walked the earth",
			"The Age of Arcana, when magic flowed freely",
		},
		Hints: []string{
			"The prophecy speaks of three ages meeting.",
			"Dragons were keepers of ancestral knowledge.",
			"Titans stood for brute force, not wisdom.",
			"The Arcane Age was the last of the three great ages.",
			"The answer unites strength, wisdom and magic.",
		},
		Theme: "history",
	},
	{
		ID:       4,
		Question: "Which of the three artifacts is the key to waking the Primordial Flow?",
		Options: []string{
			"The Aether Staff, conduit of pure energy",
			"The Tide Orb, master of the liquid elements",
			"The Temporal Anchor, stabilizer of spacetime",
		},
		Hints: []string{
			"The Primordial Flow is the source of all magic.",
			"A staff conducts; it is not a source.",
			"The tides follow the natural flow of the world.",
			"Time is only one face of the Flow.",
			"To wake a source you need a channel of pure energy.",
		},
		Theme: "magic",
	},
}

// AssignEnigma draws one enigma and randomizes its correct option for this
// game. The returned value owns its slices; mutating it cannot touch the
// authored table.
func AssignEnigma(rng *rand.Rand) Enigma {
	base := enigmas[rng.Intn(len(enigmas))]
	e := Enigma{
		ID:           base.ID,
		Question:     base.Question,
		Options:      append([]string(nil), base.Options...),
		Hints:        append([]string(nil), base.Hints...),
		Theme:        base.Theme,
		CorrectIndex: rng.Intn(len(base.Options)),
	}
	return e
}

// CheckAnswer reports whether the selected option index solves the enigma.
func (e Enigma) CheckAnswer(selected int) bool {
	return selected == e.CorrectIndex
}
