package schedule

// balance orients the pairing {a, b} for round r. With a < b, a is away
// when (r+a+b) is even and home otherwise, which splits each team's home
// and away games evenly across a full round robin.
func balance(a, b, r int) Game {
	if a > b {
		a, b = b, a
	}
	if (r+a+b)%2 == 0 {
		return Game{Away: Play(Team(a)), Home: Play(Team(b))}
	}
	return Game{Away: Play(Team(b)), Home: Play(Team(a))}
}
