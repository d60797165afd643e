package entity

// Player is one of the two participants. It is immutable once built.
type Player struct {
	name  string
	token Token
}

func NewPlayer(name string, token Token) *Player {
	return &Player{
		name:  name,
		token: token,
	}
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Token() Token {
	return that.token
}
