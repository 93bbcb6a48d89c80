package orderbook

// Red-black tree keyed by price, one PriceLevel per node. Sentinel-nil
// variant: t.nil is shared by all leaves and the root's parent, which
// keeps the fixup loops free of nil checks.

type color uint8

const (
	red color = iota
	black
)

type treeNode struct {
	price  int64
	level  *PriceLevel
	color  color
	left   *treeNode
	right  *treeNode
	parent *treeNode
}

type LevelTree struct {
	root *treeNode
	nil  *treeNode
	size int
}

func NewLevelTree() *LevelTree {
	sentinel := &treeNode{color: black}
	return &LevelTree{root: sentinel, nil: sentinel}
}

// Size returns the number of price levels in the tree.
func (t *LevelTree) Size() int { return t.size }

// Find returns the level at price, or nil.
func (t *LevelTree) Find(price int64) *PriceLevel {
	n := t.root
	for n != t.nil {
		switch {
		case price < n.price:
			n = n.left
		case price > n.price:
			n = n.right
		default:
			return n.level
		}
	}
	return nil
}

// Upsert returns the level at price, creating it if absent.
func (t *LevelTree) Upsert(price int64) *PriceLevel {
	parent := t.nil
	n := t.root
	for n != t.nil {
		parent = n
		switch {
		case price < n.price:
			n = n.left
		case price > n.price:
			n = n.right
		default:
			return n.level
		}
	}

	lvl := &PriceLevel{Price: price}
	z := &treeNode{
		price:  price,
		level:  lvl,
		color:  red,
		left:   t.nil,
		right:  t.nil,
		parent: parent,
	}
	switch {
	case parent == t.nil:
		t.root = z
	case price < parent.price:
		parent.left = z
	default:
		parent.right = z
	}
	t.insertFixup(z)
	t.size++
	return lvl
}

// Delete removes the level at price; false if absent.
func (t *LevelTree) Delete(price int64) bool {
	z := t.search(price)
	if z == t.nil {
		return false
	}
	t.deleteNode(z)
	t.size--
	return true
}

// Min returns the lowest-price level, or nil on an empty tree.
func (t *LevelTree) Min() *PriceLevel {
	n := t.min(t.root)
	if n == t.nil {
		return nil
	}
	return n.level
}

// Max returns the highest-price level, or nil on an empty tree.
func (t *LevelTree) Max() *PriceLevel {
	n := t.max(t.root)
	if n == t.nil {
		return nil
	}
	return n.level
}

// Ascending visits levels from lowest price upward until fn returns
// false.
func (t *LevelTree) Ascending(fn func(*PriceLevel) bool) {
	for n := t.min(t.root); n != t.nil; n = t.successor(n) {
		if !fn(n.level) {
			return
		}
	}
}

// Descending visits levels from highest price downward until fn
// returns false.
func (t *LevelTree) Descending(fn func(*PriceLevel) bool) {
	for n := t.max(t.root); n != t.nil; n = t.predecessor(n) {
		if !fn(n.level) {
			return
		}
	}
}

// ---------- internals ----------

func (t *LevelTree) search(price int64) *treeNode {
	n := t.root
	for n != t.nil {
		switch {
		case price < n.price:
			n = n.left
		case price > n.price:
			n = n.right
		default:
			return n
		}
	}
	return t.nil
}

func (t *LevelTree) min(n *treeNode) *treeNode {
	if n == t.nil {
		return t.nil
	}
	for n.left != t.nil {
		n = n.left
	}
	return n
}

func (t *LevelTree) max(n *treeNode) *treeNode {
	if n == t.nil {
		return t.nil
	}
	for n.right != t.nil {
		n = n.right
	}
	return n
}

func (t *LevelTree) successor(n *treeNode) *treeNode {
	if n.right != t.nil {
		return t.min(n.right)
	}
	p := n.parent
	for p != t.nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *LevelTree) predecessor(n *treeNode) *treeNode {
	if n.left != t.nil {
		return t.max(n.left)
	}
	p := n.parent
	for p != t.nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

func (t *LevelTree) rotateLeft(x *treeNode) {
	y := x.right
	x.right = y.left
	if y.left != t.nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *LevelTree) rotateRight(x *treeNode) {
	y := x.left
	x.left = y.right
	if y.right != t.nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nil:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (t *LevelTree) insertFixup(z *treeNode) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *LevelTree) transplant(u, v *treeNode) {
	switch {
	case u.parent == t.nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *LevelTree) deleteNode(z *treeNode) {
	y := z
	yColor := y.color
	var x *treeNode

	switch {
	case z.left == t.nil:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.nil:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.min(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == black {
		t.deleteFixup(x)
	}
}

func (t *LevelTree) deleteFixup(x *treeNode) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			sib := x.parent.right
			if sib.color == red {
				sib.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				sib = x.parent.right
			}
			if sib.left.color == black && sib.right.color == black {
				sib.color = red
				x = x.parent
			} else {
				if sib.right.color == black {
					sib.left.color = black
					sib.color = red
					t.rotateRight(sib)
					sib = x.parent.right
				}
				sib.color = x.parent.color
				x.parent.color = black
				sib.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			sib := x.parent.left
			if sib.color == red {
				sib.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				sib = x.parent.left
			}
			if sib.right.color == black && sib.left.color == black {
				sib.color = red
				x = x.parent
			} else {
				if sib.left.color == black {
					sib.right.color = black
					sib.color = red
					t.rotateLeft(sib)
					sib = x.parent.left
				}
				sib.color = x.parent.color
				x.parent.color = black
				sib.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
