package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"footballapi/internal/handlers"
	"footballapi/internal/middleware"
	"footballapi/internal/models"
	"footballapi/internal/repositories"
	"footballapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int64

// setupApp builds the full Fiber app over a fresh in-memory SQLite database,
// wired exactly as main does it.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// A unique shared-cache name per call keeps tests isolated from each
	// other while letting the connection pool see one database.
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.Team{},
		&models.Tournament{},
		&models.Squad{},
		&models.Match{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	playerRepo := repositories.NewGORMPlayerRepository(db)
	teamRepo := repositories.NewGORMTeamRepository(db)
	tournamentRepo := repositories.NewGORMTournamentRepository(db)
	squadRepo := repositories.NewGORMSquadRepository(db)
	matchRepo := repositories.NewGORMMatchRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	playerService := services.NewPlayerService(playerRepo)
	teamService := services.NewTeamService(teamRepo)
	tournamentService := services.NewTournamentService(tournamentRepo)
	squadService := services.NewSquadService(squadRepo, teamRepo, playerRepo, tournamentRepo)
	matchService := services.NewMatchService(matchRepo, teamRepo, tournamentRepo, nil)

	app := fiber.New()
	app.Use(middleware.TokenDecode(authService))

	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewPlayerHandler(playerService).RegisterRoutes(app)
	handlers.NewTeamHandler(teamService).RegisterRoutes(app)
	handlers.NewTournamentHandler(tournamentService).RegisterRoutes(app)
	handlers.NewSquadHandler(squadService).RegisterRoutes(app)
	handlers.NewMatchHandler(matchService).RegisterRoutes(app)

	return app
}

// doRequest performs a JSON request against the app, optionally with a
// bearer token, and returns the response.
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into out and closes it.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// signUpAndSignIn registers an account of the given role and returns a token
// for it.
func signUpAndSignIn(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/usuarios/signUp", map[string]string{
		"name":     "Test",
		"surname":  "User",
		"email":    username + "@example.com",
		"username": username,
		"password": "password123",
		"type":     role,
	}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/usuarios/signIn", map[string]string{
		"username": username,
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

// createTeam inserts a team through the API and returns its id.
func createTeam(t *testing.T, app *fiber.App, token, name, aka string) uint {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/teams", map[string]string{
		"teamName":   name,
		"teamAKA":    aka,
		"regionName": "Europe",
		"country":    "Spain",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Team models.Team `json:"team"`
	}
	decodeBody(t, resp, &body)
	assert.NotZero(t, body.Team.ID)
	return body.Team.ID
}

// createTournament inserts a tournament through the API and returns its id.
func createTournament(t *testing.T, app *fiber.App, token, name string) uint {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/tournaments", map[string]interface{}{
		"tournamentName": name,
		"year":           2024,
		"startDate":      "2024-08-01T00:00:00Z",
		"endDate":        "2025-05-30T00:00:00Z",
		"typeTournament": "league",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Tournament models.Tournament `json:"tournament"`
	}
	decodeBody(t, resp, &body)
	assert.NotZero(t, body.Tournament.ID)
	return body.Tournament.ID
}

// createPlayer inserts a player through the API and returns its id.
func createPlayer(t *testing.T, app *fiber.App, token, name string) uint {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/players", map[string]string{
		"playerName":    name,
		"playerSurname": "Tester",
		"birthDate":     "1995-03-15T00:00:00Z",
		"position":      "midfielder",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Player models.Player `json:"player"`
	}
	decodeBody(t, resp, &body)
	assert.NotZero(t, body.Player.ID)
	return body.Player.ID
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSignUpAndSignIn(t *testing.T) {
	app := setupApp(t)

	// Sign-up returns 201 and the response never carries salt or hash.
	resp := doRequest(t, app, http.MethodPost, "/usuarios/signUp", map[string]string{
		"name":     "A",
		"surname":  "B",
		"email":    "a@b.com",
		"username": "ab1",
		"password": "secret123",
		"type":     "user",
	}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var signUpResp map[string]map[string]interface{}
	decodeBody(t, resp, &signUpResp)
	usuario := signUpResp["usuario"]
	assert.NotNil(t, usuario)
	assert.Equal(t, "ab1", usuario["username"])
	assert.NotContains(t, usuario, "salt")
	assert.NotContains(t, usuario, "hash")
	assert.NotZero(t, usuario["id_usuario"])

	// Duplicate username is a validation fault, not a 500.
	resp = doRequest(t, app, http.MethodPost, "/usuarios/signUp", map[string]string{
		"name":     "A",
		"surname":  "B",
		"email":    "other@b.com",
		"username": "ab1",
		"password": "secret123",
		"type":     "user",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Malformed email is rejected with field messages.
	resp = doRequest(t, app, http.MethodPost, "/usuarios/signUp", map[string]string{
		"name":     "A",
		"surname":  "B",
		"email":    "not-an-email",
		"username": "ab2",
		"password": "secret123",
		"type":     "user",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var validationResp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decodeBody(t, resp, &validationResp)
	assert.Equal(t, "Validation failed", validationResp.Message)
	assert.Contains(t, validationResp.Errors, "Email")

	// Correct credentials: 200 with a token.
	resp = doRequest(t, app, http.MethodPost, "/usuarios/signIn", map[string]string{
		"username": "ab1",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	assert.Equal(t, "ab1", loginResp["usuario"])
	assert.Equal(t, "a@b.com", loginResp["email"])
	assert.NotEmpty(t, loginResp["token"])

	// Wrong password: 401.
	resp = doRequest(t, app, http.MethodPost, "/usuarios/signIn", map[string]string{
		"username": "ab1",
		"password": "wrongpassword",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Unknown username: 404.
	resp = doRequest(t, app, http.MethodPost, "/usuarios/signIn", map[string]string{
		"username": "nobody",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGuards(t *testing.T) {
	app := setupApp(t)
	userToken := signUpAndSignIn(t, app, "regularuser", "user")
	adminToken := signUpAndSignIn(t, app, "adminuser", "admin")

	// Admin-only route without a token: 401.
	resp := doRequest(t, app, http.MethodGet, "/players", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// With a garbage token the decode yields no claims, so still 401.
	resp = doRequest(t, app, http.MethodGet, "/players", nil, "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// With a user-role token: 403.
	resp = doRequest(t, app, http.MethodGet, "/players", nil, userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// With an admin token: 200.
	resp = doRequest(t, app, http.MethodGet, "/players", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Tournament reads are public.
	resp = doRequest(t, app, http.MethodGet, "/tournaments", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Tournament writes are not.
	resp = doRequest(t, app, http.MethodPost, "/tournaments", map[string]interface{}{
		"tournamentName": "Nope",
		"year":           2024,
		"startDate":      "2024-08-01T00:00:00Z",
		"endDate":        "2025-05-30T00:00:00Z",
		"typeTournament": "league",
	}, userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestPlayerCRUD(t *testing.T) {
	app := setupApp(t)
	adminToken := signUpAndSignIn(t, app, "playeradmin", "admin")

	// Create and fetch back: field-for-field round-trip.
	resp := doRequest(t, app, http.MethodPost, "/players", map[string]string{
		"playerName":    "Diego",
		"playerSurname": "Campos",
		"birthDate":     "1998-11-02T00:00:00Z",
		"position":      "striker",
	}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var createResp struct {
		Player models.Player `json:"player"`
	}
	decodeBody(t, resp, &createResp)
	created := createResp.Player
	assert.NotZero(t, created.ID)

	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/players/%d", created.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var getResp struct {
		Player models.Player `json:"player"`
	}
	decodeBody(t, resp, &getResp)
	assert.Equal(t, created.ID, getResp.Player.ID)
	assert.Equal(t, "Diego", getResp.Player.PlayerName)
	assert.Equal(t, "Campos", getResp.Player.PlayerSurname)
	assert.Equal(t, "striker", getResp.Player.Position)
	assert.True(t, created.BirthDate.Equal(getResp.Player.BirthDate))

	// Invalid position enum: 400 with field messages.
	resp = doRequest(t, app, http.MethodPost, "/players", map[string]string{
		"playerName":    "Bad",
		"playerSurname": "Position",
		"birthDate":     "1998-11-02T00:00:00Z",
		"position":      "sweeper",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var validationResp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, resp, &validationResp)
	assert.Contains(t, validationResp.Errors, "Position")

	// Full replacement via PUT.
	resp = doRequest(t, app, http.MethodPut, fmt.Sprintf("/players/%d", created.ID), map[string]string{
		"playerName":    "Diego",
		"playerSurname": "Campos",
		"birthDate":     "1998-11-02T00:00:00Z",
		"position":      "midfielder",
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updateResp struct {
		Player models.Player `json:"player"`
	}
	decodeBody(t, resp, &updateResp)
	assert.Equal(t, created.ID, updateResp.Player.ID)
	assert.Equal(t, "midfielder", updateResp.Player.Position)

	// Delete, then confirm it is gone and a second delete stays 404.
	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/players/%d", created.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/players/%d", created.ID), nil, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/players/%d", created.ID), nil, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPlayerPagination(t *testing.T) {
	app := setupApp(t)
	adminToken := signUpAndSignIn(t, app, "pageadmin", "admin")

	for i := 0; i < 3; i++ {
		createPlayer(t, app, adminToken, fmt.Sprintf("Player%d", i))
	}

	// Both limit and offset: paginated.
	resp := doRequest(t, app, http.MethodGet, "/players?limit=2&offset=0", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listResp struct {
		Players []models.Player `json:"players"`
	}
	decodeBody(t, resp, &listResp)
	assert.Len(t, listResp.Players, 2)

	resp = doRequest(t, app, http.MethodGet, "/players?limit=2&offset=2", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &listResp)
	assert.Len(t, listResp.Players, 1)

	// Only one of the two: pagination is disabled.
	resp = doRequest(t, app, http.MethodGet, "/players?limit=2", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &listResp)
	assert.Len(t, listResp.Players, 3)
}

func TestSquadNumberBounds(t *testing.T) {
	app := setupApp(t)
	adminToken := signUpAndSignIn(t, app, "squadadmin", "admin")

	teamID := createTeam(t, app, adminToken, "Squad FC", "SQD")
	playerID := createPlayer(t, app, adminToken, "Rostered")
	tournamentID := createTournament(t, app, adminToken, "Squad League")

	newSquad := func(number int) map[string]interface{} {
		return map[string]interface{}{
			"position":      "defender",
			"number":        number,
			"fk_team":       teamID,
			"fk_player":     playerID,
			"fk_tournament": tournamentID,
		}
	}

	// Outside [1,99]: rejected.
	resp := doRequest(t, app, http.MethodPost, "/squads", newSquad(0), adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/squads", newSquad(100), adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Inside the range: accepted, and the read back carries associations.
	resp = doRequest(t, app, http.MethodPost, "/squads", newSquad(4), adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var createResp struct {
		Squad models.Squad `json:"squad"`
	}
	decodeBody(t, resp, &createResp)
	assert.NotZero(t, createResp.Squad.ID)

	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/squads/%d", createResp.Squad.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var getResp struct {
		Squad models.Squad `json:"squad"`
	}
	decodeBody(t, resp, &getResp)
	assert.Equal(t, 4, getResp.Squad.Number)
	if assert.NotNil(t, getResp.Squad.Team) {
		assert.Equal(t, "Squad FC", getResp.Squad.Team.TeamName)
	}
	if assert.NotNil(t, getResp.Squad.Player) {
		assert.Equal(t, "Rostered", getResp.Squad.Player.PlayerName)
	}

	// Dangling player reference: validation fault.
	dangling := newSquad(7)
	dangling["fk_player"] = 9999
	resp = doRequest(t, app, http.MethodPost, "/squads", dangling, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var validationResp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, resp, &validationResp)
	assert.Contains(t, validationResp.Errors, "fk_player")
}

func TestSquadsByTeamAndTeamTournaments(t *testing.T) {
	app := setupApp(t)
	adminToken := signUpAndSignIn(t, app, "rosteradmin", "admin")

	teamID := createTeam(t, app, adminToken, "Roster FC", "ROS")
	otherTeamID := createTeam(t, app, adminToken, "Other FC", "OTH")
	playerID := createPlayer(t, app, adminToken, "First")
	secondPlayerID := createPlayer(t, app, adminToken, "Second")
	leagueID := createTournament(t, app, adminToken, "Roster League")
	cupID := createTournament(t, app, adminToken, "Roster Cup")

	for _, entry := range []map[string]interface{}{
		{"position": "goalkeeper", "number": 1, "fk_team": teamID, "fk_player": playerID, "fk_tournament": leagueID},
		{"position": "striker", "number": 9, "fk_team": teamID, "fk_player": secondPlayerID, "fk_tournament": leagueID},
		{"position": "goalkeeper", "number": 1, "fk_team": teamID, "fk_player": playerID, "fk_tournament": cupID},
	} {
		resp := doRequest(t, app, http.MethodPost, "/squads", entry, adminToken)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// Squads for the team.
	resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/squads/teams/%d", teamID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var squadsResp struct {
		Squads []models.Squad `json:"squads"`
	}
	decodeBody(t, resp, &squadsResp)
	assert.Len(t, squadsResp.Squads, 3)

	// Distinct tournaments for the team: two, despite three entries.
	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/squads/teams/tournaments/%d", teamID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var tournamentsResp struct {
		Tournaments []models.Tournament `json:"tournaments"`
	}
	decodeBody(t, resp, &tournamentsResp)
	assert.Len(t, tournamentsResp.Tournaments, 2)

	// A team with no roster yields empty lists, not 404.
	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/squads/teams/%d", otherTeamID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &squadsResp)
	assert.Empty(t, squadsResp.Squads)
}

func TestMatchEndpoints(t *testing.T) {
	app := setupApp(t)
	adminToken := signUpAndSignIn(t, app, "matchadmin", "admin")

	homeID := createTeam(t, app, adminToken, "Home FC", "HOM")
	awayID := createTeam(t, app, adminToken, "Away FC", "AWY")
	idleID := createTeam(t, app, adminToken, "Idle FC", "IDL")
	tournamentID := createTournament(t, app, adminToken, "Match League")

	// Dangling home team reference: validation fault, never accepted.
	resp := doRequest(t, app, http.MethodPost, "/matches", map[string]interface{}{
		"matchDate":     "2024-09-14T20:00:00Z",
		"fk_tournament": tournamentID,
		"fk_home":       9999,
		"fk_away":       awayID,
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var validationResp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, resp, &validationResp)
	assert.Contains(t, validationResp.Errors, "fk_home")

	// Valid creation.
	resp = doRequest(t, app, http.MethodPost, "/matches", map[string]interface{}{
		"matchDate":     "2024-09-14T20:00:00Z",
		"fk_tournament": tournamentID,
		"fk_home":       homeID,
		"fk_away":       awayID,
	}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var createResp struct {
		Match models.Match `json:"match"`
	}
	decodeBody(t, resp, &createResp)
	matchID := createResp.Match.ID
	assert.NotZero(t, matchID)
	assert.Nil(t, createResp.Match.Winner)

	// The detail view resolves the tournament and both team roles.
	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/matches/%d", matchID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var getResp struct {
		Match models.Match `json:"match"`
	}
	decodeBody(t, resp, &getResp)
	if assert.NotNil(t, getResp.Match.HomeTeam) {
		assert.Equal(t, "Home FC", getResp.Match.HomeTeam.TeamName)
	}
	if assert.NotNil(t, getResp.Match.AwayTeam) {
		assert.Equal(t, "Away FC", getResp.Match.AwayTeam.TeamName)
	}
	if assert.NotNil(t, getResp.Match.Tournament) {
		assert.Equal(t, "Match League", getResp.Match.Tournament.TournamentName)
	}

	// Record the result with a partial patch.
	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/matches/%d", matchID), map[string]interface{}{
		"winner":    "home",
		"homeGoals": 3,
		"awayGoals": 1,
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var patchResp struct {
		Match models.Match `json:"match"`
	}
	decodeBody(t, resp, &patchResp)
	if assert.NotNil(t, patchResp.Match.Winner) {
		assert.Equal(t, "home", *patchResp.Match.Winner)
	}
	assert.Equal(t, 3, *patchResp.Match.HomeGoals)
	assert.Equal(t, 1, *patchResp.Match.AwayGoals)
	// The patch left the date and references alone.
	assert.Equal(t, homeID, patchResp.Match.HomeTeamID)
	assert.True(t, createResp.Match.MatchDate.Equal(patchResp.Match.MatchDate))

	// An invalid winner value is rejected.
	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/matches/%d", matchID), map[string]interface{}{
		"winner": "visitors",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Matches by tournament.
	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/matches/tournaments/%d", tournamentID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listResp struct {
		Matches []models.Match `json:"matches"`
	}
	decodeBody(t, resp, &listResp)
	assert.Len(t, listResp.Matches, 1)

	// Matches by team covers both roles.
	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/matches/teams/%d", awayID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &listResp)
	assert.Len(t, listResp.Matches, 1)

	// A team with no matches yields an empty list, not 404.
	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/matches/teams/%d", idleID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &listResp)
	assert.Empty(t, listResp.Matches)

	// Unknown match id: 404.
	resp = doRequest(t, app, http.MethodGet, "/matches/9999", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestTeamPatch(t *testing.T) {
	app := setupApp(t)
	adminToken := signUpAndSignIn(t, app, "teamadmin", "admin")

	teamID := createTeam(t, app, adminToken, "Patch FC", "PAT")

	// Patch only the manager; everything else stays.
	resp := doRequest(t, app, http.MethodPatch, fmt.Sprintf("/teams/%d", teamID), map[string]string{
		"manager": "New Manager",
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var patchResp struct {
		Team models.Team `json:"team"`
	}
	decodeBody(t, resp, &patchResp)
	assert.Equal(t, "Patch FC", patchResp.Team.TeamName)
	assert.Equal(t, "New Manager", patchResp.Team.Manager)

	// A short code longer than three characters is rejected.
	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/teams/%d", teamID), map[string]string{
		"teamAKA": "LONG",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Patching a nonexistent team: 404.
	resp = doRequest(t, app, http.MethodPatch, "/teams/9999", map[string]string{
		"manager": "Nobody",
	}, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestTournamentLifecycle(t *testing.T) {
	app := setupApp(t)
	adminToken := signUpAndSignIn(t, app, "touradmin", "admin")

	tournamentID := createTournament(t, app, adminToken, "Lifecycle Cup")

	// Public read of the created tournament.
	resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/tournaments/%d", tournamentID), nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var getResp struct {
		Tournament models.Tournament `json:"tournament"`
	}
	decodeBody(t, resp, &getResp)
	assert.Equal(t, "Lifecycle Cup", getResp.Tournament.TournamentName)
	assert.Nil(t, getResp.Tournament.Winner)

	// Full replacement sets the winner.
	resp = doRequest(t, app, http.MethodPut, fmt.Sprintf("/tournaments/%d", tournamentID), map[string]interface{}{
		"tournamentName": "Lifecycle Cup",
		"year":           2024,
		"startDate":      "2024-08-01T00:00:00Z",
		"endDate":        "2025-05-30T00:00:00Z",
		"winner":         "Roster FC",
		"typeTournament": "league",
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var putResp struct {
		Tournament models.Tournament `json:"tournament"`
	}
	decodeBody(t, resp, &putResp)
	if assert.NotNil(t, putResp.Tournament.Winner) {
		assert.Equal(t, "Roster FC", *putResp.Tournament.Winner)
	}

	// An unknown tournament type is rejected.
	resp = doRequest(t, app, http.MethodPost, "/tournaments", map[string]interface{}{
		"tournamentName": "Bad Type",
		"year":           2024,
		"startDate":      "2024-08-01T00:00:00Z",
		"endDate":        "2025-05-30T00:00:00Z",
		"typeTournament": "knockout",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Delete and confirm.
	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/tournaments/%d", tournamentID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/tournaments/%d", tournamentID), nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestTokenRoundTrip(t *testing.T) {
	app := setupApp(t)

	// An admin created just now can immediately use a protected route; the
	// token issued at sign-in has to stay valid.
	adminToken := signUpAndSignIn(t, app, "tokenadmin", "admin")

	resp := doRequest(t, app, http.MethodGet, "/teams", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
