package dummy

type workTemplate struct {
	Title            string
	Content          string
	MaxContributions int
}

type categoryTemplate struct {
	ID        string
	Name      string
	Category  string
	Templates []workTemplate
}

var categoryTemplates = []categoryTemplate{
	{
		ID:       "poetry",
		Name:     "Poetry",
		Category: "poetry",
		Templates: []workTemplate{
			{Title: "Memory of a Spring Day", Content: "Cherry blossoms drift through the afternoon\non the road we used to walk\nand the wind whispers softly", MaxContributions: 3},
			{Title: "City Night", Content: "Neon signs flicker\nin the deep night of this city\nfootsteps walking alone", MaxContributions: 4},
			{Title: "The Road to the Sea", Content: "Beyond the endless horizon\nthe waves sing their calling song\nand my heart runs ahead", MaxContributions: 2},
		},
	},
	{
		ID:       "novel",
		Name:     "Novel",
		Category: "novel",
		Templates: []workTemplate{
			{Title: "The Last Letter", Content: "The letter arrived thirty years late. Yoon turned the yellowed envelope over twice before daring to open it.", MaxContributions: 8},
			{Title: "Midnight Bookstore", Content: "The bookstore at the end of the alley only opened after midnight, and it only sold books that had never been finished.", MaxContributions: 10},
			{Title: "Two Umbrellas", Content: "It always rained on Thursdays. She noticed him because he carried two umbrellas and never used either.", MaxContributions: 6},
		},
	},
	{
		ID:       "essay",
		Name:     "Essay",
		Category: "essay",
		Templates: []workTemplate{
			{Title: "On Waiting", Content: "We spend most of our lives waiting, and almost none of it learning how.", MaxContributions: 5},
			{Title: "The Shape of Mornings", Content: "Every city has its own morning. Mine begins with the smell of a bakery that no longer exists.", MaxContributions: 4},
			{Title: "Small Courages", Content: "Courage is rarely loud. Most days it looks like opening a door you closed years ago.", MaxContributions: 5},
		},
	},
	{
		ID:       "scenario",
		Name:     "Scenario",
		Category: "scenario",
		Templates: []workTemplate{
			{Title: "Platform Nine", Content: "INT. SUBWAY PLATFORM - NIGHT\n\nThe last train has gone. HANA (20s) sits alone on the bench, holding a ticket for a station that is not on the map.", MaxContributions: 7},
			{Title: "The Audition", Content: "INT. EMPTY THEATER - DAY\n\nA single spotlight. MIN-JUN steps into it, script shaking in his hands. The casting director is nowhere to be seen.", MaxContributions: 6},
		},
	},
}

var dummyAuthors = []string{
	"wandering_poet", "night_writer", "paper_moon", "quiet_river",
	"ink_and_rain", "letter_keeper", "blue_hour", "dawn_sparrow",
}

var nicknameParts = struct {
	adjectives []string
	nouns      []string
}{
	adjectives: []string{"quiet", "brave", "sleepy", "sunny", "misty", "lucky", "gentle", "stormy"},
	nouns:      []string{"otter", "maple", "comet", "harbor", "ember", "willow", "sparrow", "lantern"},
}

func categoryIDs() []string {
	ids := make([]string, 0, len(categoryTemplates))
	for _, c := range categoryTemplates {
		ids = append(ids, c.ID)
	}
	return ids
}
