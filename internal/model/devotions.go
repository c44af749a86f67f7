package model

// Verse is a short Quran excerpt used for the daily prompt.
type Verse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// Hadith is a short narration used for the daily prompt.
type Hadith struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Narrator string `json:"narrator"`
}

// Built-in content rotated by the daily reminder.
var SeedVerses = []Verse{
	{ID: "v1", Text: "Indeed, with hardship [will be] ease.", Reference: "Quran 94:6"},
	{ID: "v2", Text: "So remember Me; I will remember you.", Reference: "Quran 2:152"},
}

var SeedHadiths = []Hadith{
	{ID: "h1", Text: "The best among you are those who have the best manners and character.", Narrator: "Sahih Bukhari"},
	{ID: "h2", Text: "Purity is half of faith.", Narrator: "Sahih Muslim"},
}
