package svgpath

import (
	"strconv"

	"github.com/gogpu/stroker/path"
)

// Format writes p as compact SVG path data using absolute commands.
// prec is passed to strconv.FormatFloat; -1 gives the shortest exact form.
func Format(p *path.Path, prec int) string {
	var b []byte
	it := p.Iter()
	for it.Next() {
		if len(b) > 0 {
			b = append(b, ' ')
		}
		cmd := it.Command()
		b = append(b, cmd.String()...)
		for i, v := range it.Coords() {
			if i%2 == 1 {
				b = append(b, ',')
			} else if i > 0 {
				b = append(b, ' ')
			}
			if v == 0 {
				v = 0 // no "-0"
			}
			b = strconv.AppendFloat(b, v, 'f', prec, 64)
		}
	}
	return string(b)
}
