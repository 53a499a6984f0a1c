package game

// AddRoundScore adds amount to the AI's bucket for the current round and
// returns the updated scoreboard. Rounds other than 1 and 2 all land in
// the round 3 bucket; Round is not validated.
func (sb Scoreboard) AddRoundScore(amount int) Scoreboard {
	switch sb.Round {
	case 1:
		sb.R1AIScore += amount
	case 2:
		sb.R2AIScore += amount
	default:
		sb.R3AIScore += amount
	}
	return sb
}

// AddAIPenalty charges the AI amount bull heads, both on its match total
// and on the current round.
func (sb Scoreboard) AddAIPenalty(amount int) Scoreboard {
	sb.AIScore += amount
	return sb.AddRoundScore(amount)
}

// AIRoundScore is the AI's score in the bucket the current round maps to.
func (sb Scoreboard) AIRoundScore() int {
	switch sb.Round {
	case 1:
		return sb.R1AIScore
	case 2:
		return sb.R2AIScore
	default:
		return sb.R3AIScore
	}
}
