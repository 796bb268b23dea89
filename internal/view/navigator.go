package view

// Navigator is a batch cursor; the index always stays in [0, n-1].
type Navigator struct {
	index int
	count int
}

func NewNavigator(count, index int) Navigator {
	n := Navigator{count: count}
	n.index = n.clamp(index)
	return n
}

func (n Navigator) clamp(i int) int {
	if n.count <= 0 || i < 0 {
		return 0
	}
	if i > n.count-1 {
		return n.count - 1
	}
	return i
}

func (n Navigator) Index() int { return n.index }
func (n Navigator) Count() int { return n.count }

func (n Navigator) Jump(i int) Navigator {
	n.index = n.clamp(i)
	return n
}

func (n Navigator) Prev() Navigator { return n.Jump(n.index - 1) }
func (n Navigator) Next() Navigator { return n.Jump(n.index + 1) }

func (n Navigator) CanPrev() bool { return n.index > 0 }
func (n Navigator) CanNext() bool { return n.index < n.count-1 }
