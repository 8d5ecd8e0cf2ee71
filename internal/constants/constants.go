package constants

// Centralized constants for env keys, routes, Gemini integration and API
// error strings.
const (
	// Environment variable keys
	EnvGoogleAIAPIKey = "GOOGLE_AI_API_KEY"
	EnvConfigPath     = "FUTBOL_CONFIG"
	EnvDBPath         = "FUTBOL_DB"

	// HTTP headers and content types
	HeaderContentType  = "Content-Type"
	HeaderGeminiAPIKey = "x-goog-api-key"

	ContentTypeJSON = "application/json"

	// Gemini API base URL. The model name is interpolated into the
	// generateContent path per attempt.
	GeminiBaseURL             = "https://generativelanguage.googleapis.com"
	GeminiGenerateContentPath = "/v1beta/models/%s:generateContent"
)

// DefaultGeminiModels is the advisory model cascade, tried in order until
// one returns a usable matchup.
var DefaultGeminiModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-pro",
	"gemini-1.5-flash-8b",
}

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteGenerateMatch = "/generate-match"
	RoutePlayers       = "/players"
	RoutePlayerRatings = "/players/:playerID/ratings"
	RouteMatches       = "/matches"
	RouteMatchByID     = "/matches/:matchID"
	RouteSkills        = "/skills"
	RouteVersion       = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrNotEnoughPlayers   = "Se necesitan al menos 2 jugadores"
	ErrGroupIDRequired    = "group_id is required"
	ErrPlayerNameRequired = "player name is required"
	ErrPlayerNotFound     = "Player not found"
	ErrMatchNotFound      = "Match not found"
	ErrInvalidSkillID     = "unknown skill id"
	ErrInvalidSkillScore  = "skill scores must be between 0 and 5"

	ErrFailedFetchPlayers = "Failed to fetch players"
	ErrFailedCreatePlayer = "Failed to create player"
	ErrFailedSaveRatings  = "Failed to save ratings"
	ErrFailedFetchMatches = "Failed to fetch matches"
	ErrFailedSaveMatch    = "Failed to save match"
	ErrFailedUpdateMatch  = "Failed to update match"
	ErrFailedDeleteMatch  = "Failed to delete match"
	ErrFailedGenerate     = "Failed to generate matchup"
)

// Logging field names
const (
	LogFieldGroupID  = "group_id"
	LogFieldMatchID  = "match_id"
	LogFieldPlayerID = "player_id"
	LogFieldModel    = "model"
	LogFieldKey      = "key"
	LogFieldAddr     = "addr"
	LogFieldPlayers  = "players"
	LogFieldTeamSize = "team_size"
	LogFieldSource   = "source"
)

// Sources reported for a generated matchup.
const (
	SourceAdvisory = "advisory"
	SourceFallback = "fallback"
)

// PlaceholderFailureMarker flags broken model output inside a commentary
// string (the upstream SDK interpolates the literal "undefined" on missing
// fields). Any contribution containing it is regenerated locally.
const PlaceholderFailureMarker = "undefined"
