package models

// GameType is an entry of the open-ended game type vocabulary
// "Other" is a protected sentinel that can never be deleted
type GameType struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name      string `gorm:"type:varchar(50);not null" json:"name"`
	SortOrder int    `gorm:"not null;column:sort_order" json:"order"`
}

// ProtectedGameType cannot be removed from the vocabulary
const ProtectedGameType = "Other"

// DefaultGameTypes seed the vocabulary the first time it is accessed
var DefaultGameTypes = []GameType{
	{Name: "Card Game", SortOrder: 1},
	{Name: "Board Game", SortOrder: 2},
	{Name: "Puzzle Game", SortOrder: 3},
	{Name: "Adventure Game", SortOrder: 4},
	{Name: "Party Game", SortOrder: 5},
	{Name: "Other", SortOrder: 6},
}
