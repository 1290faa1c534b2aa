// Package types defines the shared data structures for the multiquest engine.
// This package contains only type definitions and constants, no game logic.
package types

// RoomID identifies a room within a session. Real rooms use positive ids.
type RoomID int

// NoExit is the reserved connection value meaning "blocked".
const NoExit RoomID = 0

// Direction is one of the six exit slots of a room.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down

	// DirectionCount is the number of exit slots per room.
	DirectionCount
)

// DirectionNames maps each direction to its full lowercase name.
var DirectionNames = [DirectionCount]string{"north", "south", "east", "west", "up", "down"}

// Verb is a canonical command verb produced by the parser.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbMove
	VerbGet
	VerbDrop
	VerbPet
	VerbShoo
	VerbInventory
	VerbLook
	VerbUse
	VerbEat
	VerbDrink
	VerbWear
	VerbRead
	VerbWave
	VerbThrow
	VerbActivate
	VerbAttack
	VerbHelp
	VerbScore
	VerbVerbose
	VerbQuit
)

// VerbNames holds the canonical spelling of each verb.
var VerbNames = map[Verb]string{
	VerbUnknown:   "unknown",
	VerbMove:      "go",
	VerbGet:       "get",
	VerbDrop:      "drop",
	VerbPet:       "pet",
	VerbShoo:      "shoo",
	VerbInventory: "inv",
	VerbLook:      "look",
	VerbUse:       "use",
	VerbEat:       "eat",
	VerbDrink:     "drink",
	VerbWear:      "wear",
	VerbRead:      "read",
	VerbWave:      "wave",
	VerbThrow:     "throw",
	VerbActivate:  "activate",
	VerbAttack:    "attack",
	VerbHelp:      "help",
	VerbScore:     "score",
	VerbVerbose:   "verbose",
	VerbQuit:      "quit",
}

// Intent is the parsed representation of a player command. Stages append
// narrative to Output and clear Valid when a precondition fails.
type Intent struct {
	Verb      Verb
	Modifier  string    // object name, or direction name for VerbMove
	Direction Direction // meaningful only for VerbMove
	Raw       string
	Valid     bool
	Output    []string
}

// LocationKind tags which variant of Location is active.
type LocationKind int

const (
	Unplaced LocationKind = iota // not yet revealed, or removed from play
	InRoom
	Carried
	Following
)

// Location is where an item currently is. Room is meaningful only for InRoom.
type Location struct {
	Kind LocationKind
	Room RoomID
}

// ActionKind is the effect category of a usable item.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionHealth
	ActionUnlock
	ActionTeleport
	ActionFortune
	ActionWeapon
)

// Action describes what happens when a carried item is used with Verb.
type Action struct {
	Verb    Verb
	Kind    ActionKind
	Payload string
	Points  int
}

// Room is one node of the room graph.
type Room struct {
	ID          RoomID
	Name        string
	Description string
	Exits       [DirectionCount]RoomID
	Unlocked    [DirectionCount]bool // set while an unlock item holds the slot open
	Points      int
}

// Item is an object in the world.
type Item struct {
	Name        string
	Description string
	Location    Location
	Pet         bool   // must be acquired with "pet", never "get"
	ReturnRoom  RoomID // where a shooed pet goes
	Points      int
	Action      *Action // nil for items with no use
}

// Monster is a hostile creature bound to a home room.
type Monster struct {
	Key           string
	Name          string
	Description   string
	Room          RoomID
	Weapon        string // the only item name that can damage it
	AttacksToKill int
	Health        int // remaining hits
	Present       bool
	HitChance     float64
	Damage        int
	AppearChance  float64
	PetChance     float64
}

// Message is one variant of a tagged narrative template. Text may contain
// a single '@' placeholder.
type Message struct {
	Tag  string
	Text string
}

// Player holds the player's runtime state.
type Player struct {
	Name      string
	Health    int
	MaxHealth int
	Room      RoomID
	Score     int
	Verbose   bool
}

// Title is the static content template of one game.
type Title struct {
	ID            string
	Name          string
	Start         RoomID
	Health        int
	HealthStep    int
	GenericPoints int
	Welcome       string
	Help          string
	Thanks        string
	Rooms         []Room
	Items         []Item
	Monsters      []Monster
	Messages      []Message
}

// Session is one player's in-progress game.
type Session struct {
	ID            string
	Title         string
	Rooms         []Room
	Items         []Item
	Monsters      []Monster
	Messages      []Message
	Player        Player
	Help          string
	Thanks        string
	Welcome       string
	HealthStep    int
	GenericPoints int
	Awarded       []string // milestone checklist, lowercase keys
	Active        bool
	Turn          int
}

// HealthBand is the qualitative health label.
type HealthBand string

const (
	BandGreat    HealthBand = "Great"
	BandOkay     HealthBand = "Okay"
	BandBad      HealthBand = "Bad"
	BandHorrible HealthBand = "Horrible"
	BandDead     HealthBand = "Dead"
)

// MoveResult is the externally visible projection of a session after a move.
type MoveResult struct {
	SessionID   string
	Title       string
	RoomName    string
	Description string
	Narrative   []string
	Items       string
	PlayerName  string
	Health      HealthBand
	Score       int
	Turn        int
	Verbose     bool
	Ended       bool
}
