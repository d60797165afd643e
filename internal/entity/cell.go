package entity

// Token is the symbol a player's pieces are drawn with.
type Token string

// Cell is either empty or occupied by a token. The zero value is empty.
type Cell struct {
	occupied bool
	token    Token
}

// Empty returns the cell value of a slot nobody has played into yet.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell holding the given token.
func Occupied(token Token) Cell {
	return Cell{occupied: true, token: token}
}

func (that Cell) IsEmpty() bool {
	return !that.occupied
}

// Token returns the occupying token and false for an empty cell.
func (that Cell) Token() (Token, bool) {
	return that.token, that.occupied
}

func (that Cell) String() string {
	if !that.occupied {
		return " "
	}
	return string(that.token)
}
