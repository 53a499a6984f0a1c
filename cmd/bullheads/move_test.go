package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/domino14/bullheads/api"
	"github.com/domino14/bullheads/game"
)

func sacrificeState() game.GameState {
	var cards []game.Card
	for r, n := range []int{90, 91, 92, 93} {
		cards = append(cards, game.Card{CardNumber: n, RowNumber: r + 1})
	}
	cards = append(cards, game.Card{CardNumber: 10}, game.Card{CardNumber: 11})
	return game.GameState{Scoreboard: game.Scoreboard{Round: 2}, Cards: cards}
}

func extendState() game.GameState {
	return game.GameState{
		Scoreboard: game.Scoreboard{Round: 1},
		Cards: []game.Card{
			{CardNumber: 47}, {CardNumber: 5}, {CardNumber: 23},
		},
	}
}

func TestMoveCommand(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "sacrifice.yaml")
	jsonPath := filepath.Join(dir, "extend.json")

	yamlData, err := yaml.Marshal(sacrificeState())
	is.NoErr(err)
	jsonData, err := json.Marshal(extendState())
	is.NoErr(err)
	is.NoErr(os.WriteFile(yamlPath, yamlData, 0o644))
	is.NoErr(os.WriteFile(jsonPath, jsonData, 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"move", yamlPath, jsonPath})
	is.NoErr(rootCmd.Execute())

	var results []moveResult
	is.NoErr(json.Unmarshal(out.Bytes(), &results))
	is.Equal(len(results), 2)

	is.Equal(results[0].File, yamlPath)
	is.Equal(results[0].Move, "take row 2, 10 -> row 2 (collected [91], 1 bulls)")
	is.Equal(results[0].State.R2AIScore, 1)

	is.Equal(results[1].File, jsonPath)
	is.Equal(results[1].Move, "5 -> row 1")
	is.Equal(results[1].State.AIScore, 0)
}

func TestLoadStateBadFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	is.NoErr(os.WriteFile(path, []byte("{"), 0o644))
	_, err := loadState(path)
	is.True(err != nil)

	_, err = loadState(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}

func TestLoadStateRejectsIncompleteState(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "partial.json")
	is.NoErr(os.WriteFile(jsonPath, []byte(`{"round": 1, "cards": [{"cardNumber": 47}]}`), 0o644))
	_, err := loadState(jsonPath)
	var invalid *api.InvalidStateError
	is.True(errors.As(err, &invalid))
	is.True(strings.HasPrefix(err.Error(), jsonPath+": invalid fields"))

	// a complete state with a card on a row that does not exist
	s := extendState()
	s.Cards[0].RowNumber = 9
	data, err := yaml.Marshal(s)
	is.NoErr(err)
	yamlPath := filepath.Join(dir, "bad-row.yml")
	is.NoErr(os.WriteFile(yamlPath, data, 0o644))
	_, err = loadState(yamlPath)
	is.True(errors.As(err, &invalid))
	is.Equal(len(invalid.Fields), 1)
	is.Equal(invalid.Fields[0], api.FieldError{Field: "cards[0].rowNumber", Rule: "lte"})
}
