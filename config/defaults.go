package config

const (
	DefaultMaxDepth = 5
	DefaultMaxPlies = 400
)

// DefaultOpenings is the built-in book used when no openings are configured.
var DefaultOpenings = []Opening{
	{ECO: "B01", Name: "Scandinavian Defense", Moves: "1. e4 d5 2. exd5 Qxd5 3. Nc3 Qa5"},
	{ECO: "B10", Name: "Caro-Kann Defense", Moves: "1. e4 c6 2. d4 d5 3. Nc3 dxe4 4. Nxe4 Bf5"},
	{ECO: "B20", Name: "Sicilian Defense", Moves: "1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3"},
	{ECO: "B33", Name: "Sicilian Defense: Sveshnikov", Moves: "1. e4 c5 2. Nf3 Nc6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 e5"},
	{ECO: "C00", Name: "French Defense", Moves: "1. e4 e6 2. d4 d5 3. Nc3 Nf6 4. Bg5"},
	{ECO: "C42", Name: "Petrov's Defense", Moves: "1. e4 e5 2. Nf3 Nf6 3. Nxe5 d6 4. Nf3 Nxe4"},
	{ECO: "C50", Name: "Italian Game", Moves: "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. c3 Nf6"},
	{ECO: "C65", Name: "Ruy Lopez: Berlin Defense", Moves: "1. e4 e5 2. Nf3 Nc6 3. Bb5 Nf6 4. O-O Nxe4"},
	{ECO: "C84", Name: "Ruy Lopez: Closed", Moves: "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7"},
	{ECO: "D06", Name: "Queen's Gambit", Moves: "1. d4 d5 2. c4"},
	{ECO: "D37", Name: "Queen's Gambit Declined", Moves: "1. d4 d5 2. c4 e6 3. Nc3 Nf6 4. Nf3 Be7"},
	{ECO: "D85", Name: "Grunfeld Defense: Exchange", Moves: "1. d4 Nf6 2. c4 g6 3. Nc3 d5 4. cxd5 Nxd5 5. e4 Nxc3 6. bxc3"},
	{ECO: "E20", Name: "Nimzo-Indian Defense", Moves: "1. d4 Nf6 2. c4 e6 3. Nc3 Bb4"},
	{ECO: "E60", Name: "King's Indian Defense", Moves: "1. d4 Nf6 2. c4 g6 3. Nc3 Bg7 4. e4 d6 5. Nf3 O-O"},
	{ECO: "A10", Name: "English Opening", Moves: "1. c4 e5 2. Nc3 Nf6 3. Nf3 Nc6"},
	{ECO: "A04", Name: "Reti Opening", Moves: "1. Nf3 d5 2. g3 Nf6 3. Bg2"},
}
