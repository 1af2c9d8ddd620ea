package processor

import (
	"github.com/mesh-intelligence/simplelist/internal/registry"
	"github.com/mesh-intelligence/simplelist/pkg/types"
)

// Holding describes one container as it stands: its values rendered the
// way pop would print them, front first.
type Holding struct {
	Name       string
	Kind       types.Kind
	Discipline types.Discipline
	Values     []string
}

// Holdings lists every container of the run, integers first, then floats,
// then text, each kind in creation order.
func (p *Processor) Holdings() []Holding {
	out := make([]Holding, 0, p.regs.Len())
	out = appendHoldings(out, types.KindInteger, p.regs.Integers, formatInt)
	out = appendHoldings(out, types.KindFloat, p.regs.Floats, formatFloat)
	out = appendHoldings(out, types.KindText, p.regs.Texts, formatText)
	return out
}

func appendHoldings[T any](out []Holding, kind types.Kind, reg *registry.Registry[T], format func(T) string) []Holding {
	for _, name := range reg.Names() {
		c, ok := reg.Find(name)
		if !ok {
			continue
		}
		h := Holding{
			Name:       c.Name(),
			Kind:       kind,
			Discipline: c.Discipline(),
			Values:     make([]string, 0, c.Len()),
		}
		for _, v := range c.Values() {
			h.Values = append(h.Values, format(v))
		}
		out = append(out, h)
	}
	return out
}
