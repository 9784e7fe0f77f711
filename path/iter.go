package path

// Iterator is a one-shot cursor over a path's segments.
// Create a new Iterator with Path.Iter to replay the path again.
type Iterator struct {
	p   *Path
	ci  int // index of the next command
	pi  int // index of the next coordinate
	cmd Command
	buf [6]float64
	n   int
}

// Iter returns a cursor positioned before the first segment.
func (p *Path) Iter() *Iterator {
	return &Iterator{p: p}
}

// Next advances to the next segment and reports whether there was one.
func (it *Iterator) Next() bool {
	if it.ci >= len(it.p.cmds) {
		return false
	}
	it.cmd = it.p.cmds[it.ci]
	it.ci++
	it.n = it.cmd.Arity()
	copy(it.buf[:it.n], it.p.coords[it.pi:it.pi+it.n])
	it.pi += it.n
	return true
}

// Command returns the current segment's command.
func (it *Iterator) Command() Command {
	return it.cmd
}

// Coords returns the current segment's coordinates. The returned slice is
// reused by the next call to Next and must not be retained.
func (it *Iterator) Coords() []float64 {
	return it.buf[:it.n]
}
