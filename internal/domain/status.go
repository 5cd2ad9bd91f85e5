package domain

// transitionTable mapeia cada estado para os estados alcançáveis a partir dele.
// Estados ausentes da tabela são terminais.
type transitionTable[S comparable] map[S][]S

func (t transitionTable[S]) allows(from, to S) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}
