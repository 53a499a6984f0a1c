package game

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"
)

const sampleState = `{
  "hasStarted": true, "playerTurn": false, "hasEnded": false,
  "playerScore": 4, "aiScore": 9, "playerWon": false, "aiWon": false, "aiAlgo": 1,
  "r1Over": true, "r2Over": false, "r3Over": false,
  "r1playerWon": true, "r2playerWon": false, "r3playerWon": false,
  "r1playerScore": 4, "r2playerScore": 0, "r3playerScore": 0,
  "r1aiScore": 9, "r2aiScore": 0, "r3aiScore": 0,
  "round": 2,
  "cards": [
    {"cardNumber": 55, "isFlipped": true, "isSelect": false, "rowNumber": 3,
     "colNumber": 1, "isInBullHeadStack": false, "isInDrawPile": false}
  ]
}`

func TestStateJSONKeys(t *testing.T) {
	is := is.New(t)
	var s GameState
	is.NoErr(json.Unmarshal([]byte(sampleState), &s))
	is.Equal(s.AIScore, 9)
	is.Equal(s.R1AIScore, 9)
	is.Equal(s.R1PlayerWon, true)
	is.Equal(s.Round, 2)
	is.Equal(s.AIAlgo, 1)
	is.Equal(len(s.Cards), 1)
	is.Equal(s.Cards[0], Card{CardNumber: 55, IsFlipped: true, RowNumber: 3, ColNumber: 1})

	out, err := json.Marshal(s)
	is.NoErr(err)
	var flat map[string]any
	is.NoErr(json.Unmarshal(out, &flat))
	// scoreboard fields sit next to cards, not under a nested key
	_, nested := flat["Scoreboard"]
	is.True(!nested)
	is.Equal(flat["r1aiScore"], float64(9))
	is.Equal(flat["round"], float64(2))
}

func TestStateYAML(t *testing.T) {
	is := is.New(t)
	doc := `
round: 1
aiScore: 3
cards:
  - cardNumber: 12
    rowNumber: 2
  - cardNumber: 40
`
	var s GameState
	is.NoErr(yaml.Unmarshal([]byte(doc), &s))
	is.Equal(s.Round, 1)
	is.Equal(s.AIScore, 3)
	is.Equal(len(s.Cards), 2)
	is.Equal(s.Cards[0].RowNumber, 2)
	is.Equal(s.Cards[1].CardNumber, 40)
}

func TestSnapshotIsACopy(t *testing.T) {
	is := is.New(t)
	s := GameState{
		Scoreboard: Scoreboard{Round: 1},
		Cards:      []Card{{CardNumber: 5}},
	}
	cards, sb := s.Snapshot()
	cards[0].RowNumber = 2
	sb.AIScore = 10
	is.Equal(s.Cards[0].RowNumber, 0)
	is.Equal(s.AIScore, 0)

	out := Assemble(sb, cards)
	is.Equal(out.AIScore, 10)
	is.Equal(out.Cards[0].RowNumber, 2)
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	a := []Card{{CardNumber: 5, RowNumber: 1}, {CardNumber: 9}}
	b := []Card{{CardNumber: 5, RowNumber: 1, IsFlipped: true}, {CardNumber: 9, ColNumber: 3}}
	c := []Card{{CardNumber: 5, RowNumber: 2}, {CardNumber: 9}}
	is.Equal(Fingerprint(a), Fingerprint(b))
	is.True(Fingerprint(a) != Fingerprint(c))
}
