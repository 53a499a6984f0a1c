package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestAddRoundScore(t *testing.T) {
	is := is.New(t)

	sb := Scoreboard{Round: 1}.AddRoundScore(3)
	is.Equal(sb.R1AIScore, 3)
	is.Equal(sb.R2AIScore+sb.R3AIScore, 0)

	sb = Scoreboard{Round: 2}.AddRoundScore(4)
	is.Equal(sb.R2AIScore, 4)

	sb = Scoreboard{Round: 3}.AddRoundScore(5)
	is.Equal(sb.R3AIScore, 5)

	// anything outside 1 and 2 folds into round 3
	for _, r := range []int{0, 4, -1, 99} {
		sb = Scoreboard{Round: r}.AddRoundScore(2)
		is.Equal(sb.R3AIScore, 2)
		is.Equal(sb.R1AIScore+sb.R2AIScore, 0)
	}
}

func TestAddAIPenalty(t *testing.T) {
	is := is.New(t)
	orig := Scoreboard{Round: 2, AIScore: 10, R2AIScore: 1, PlayerScore: 7}
	sb := orig.AddAIPenalty(6)
	is.Equal(sb.AIScore, 16)
	is.Equal(sb.R2AIScore, 7)
	is.Equal(sb.AIRoundScore(), 7)
	is.Equal(sb.PlayerScore, 7)
	// the receiver is a value; orig is unchanged
	is.Equal(orig.AIScore, 10)
}
