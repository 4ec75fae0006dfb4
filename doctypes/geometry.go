// Package doctypes holds the shared data model (§3): geometry, font and
// paragraph descriptors, cells, style catalogs, the text-stream PLC
// model, page spans, and the block/frame tree.
package doctypes

// Number is the constraint satisfied by geometry component types.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec2 is a 2D tuple with arithmetic and lexicographic-by-last-
// coordinate ordering, per §3.1.
type Vec2[T Number] struct {
	X, Y T
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Less orders lexicographically by Y first, then X (last coordinate
// first, per §3.1).
func (v Vec2[T]) Less(o Vec2[T]) bool {
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

// Vec3 is a 3D tuple, same conventions as Vec2.
type Vec3[T Number] struct {
	X, Y, Z T
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3[T]) Less(o Vec3[T]) bool {
	if v.Z != o.Z {
		return v.Z < o.Z
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

// Box2 stores a min/max corner pair. The invariant Min <= Max
// componentwise holds after every mutation.
type Box2[T Number] struct {
	Min, Max Vec2[T]
}

// NewBox2 builds a Box2 from two arbitrary corners, normalizing so that
// Min <= Max componentwise.
func NewBox2[T Number](a, b Vec2[T]) Box2[T] {
	box := Box2[T]{Min: a, Max: a}
	box.extendPoint(b)
	return box
}

func (b *Box2[T]) extendPoint(p Vec2[T]) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

// Extend grows the box by amount on every side, centered (i.e. the
// width/height each grow by 2*amount).
func (b Box2[T]) Extend(amount T) Box2[T] {
	return Box2[T]{
		Min: Vec2[T]{b.Min.X - amount, b.Min.Y - amount},
		Max: Vec2[T]{b.Max.X + amount, b.Max.Y + amount},
	}
}

func (b Box2[T]) Width() T  { return b.Max.X - b.Min.X }
func (b Box2[T]) Height() T { return b.Max.Y - b.Min.Y }
