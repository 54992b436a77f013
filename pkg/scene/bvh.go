package scene

import "github.com/mario007/mc-pathtracer/pkg/core"

// bvhLeafThreshold: nodes with this many or fewer primitives stop
// splitting and become a leaf.
const bvhLeafThreshold = 4

// bvhStackDepth bounds the explicit traversal stack used in place of
// recursion.
const bvhStackDepth = 50

// bvhNode is a flattened BVH node: internal nodes carry child indices,
// leaves carry a span into the reordered primitive index array.
type bvhNode struct {
	box       core.AABB
	left      int32 // -1 for a leaf
	right     int32
	primStart int32
	primCount int32
}

// bvh is a midpoint-split bounding volume hierarchy over a scene's
// per-primitive AABB cache, built once in Prepare and traversed read-only
// afterward. Flattened into an index array plus an explicit stack so
// Intersect never recurses.
type bvh struct {
	nodes   []bvhNode
	indices []int32
	root    int32
}

// buildBVH constructs a bvh over the given per-primitive boxes, top-down,
// splitting each node at the spatial midpoint of its bounds along their
// longest axis rather than by a full SAH search.
func buildBVH(boxes []core.AABB) *bvh {
	b := &bvh{indices: make([]int32, len(boxes))}
	for i := range b.indices {
		b.indices[i] = int32(i)
	}
	if len(boxes) == 0 {
		return b
	}
	b.root = b.buildRange(boxes, 0, int32(len(boxes)))
	return b
}

func (b *bvh) buildRange(boxes []core.AABB, start, end int32) int32 {
	bounds := boxes[b.indices[start]]
	for i := start + 1; i < end; i++ {
		bounds = bounds.Merge(boxes[b.indices[i]])
	}

	if end-start <= bvhLeafThreshold {
		return b.appendLeaf(bounds, start, end-start)
	}

	axis := bounds.LongestAxis()
	mid := partitionByAxisMedian(boxes, b.indices[start:end], axis, bounds)
	if mid == 0 || mid == end-start {
		return b.appendLeaf(bounds, start, end-start)
	}

	nodeIdx := b.appendInternal(bounds)
	left := b.buildRange(boxes, start, start+mid)
	right := b.buildRange(boxes, start+mid, end)
	b.nodes[nodeIdx].left = left
	b.nodes[nodeIdx].right = right
	return nodeIdx
}

func (b *bvh) appendLeaf(box core.AABB, start, count int32) int32 {
	b.nodes = append(b.nodes, bvhNode{box: box, left: -1, right: -1, primStart: start, primCount: count})
	return int32(len(b.nodes) - 1)
}

func (b *bvh) appendInternal(box core.AABB) int32 {
	b.nodes = append(b.nodes, bvhNode{box: box, left: -1, right: -1})
	return int32(len(b.nodes) - 1)
}

// partitionByAxisMedian reorders indices in place around the midpoint of
// bounds along axis, returning the count assigned to the left partition.
func partitionByAxisMedian(boxes []core.AABB, indices []int32, axis int, bounds core.AABB) int32 {
	splitPos := axisComponent(bounds.Center(), axis)

	lo, hi := 0, len(indices)-1
	for lo <= hi {
		for lo <= hi && axisComponent(boxes[indices[lo]].Center(), axis) < splitPos {
			lo++
		}
		for lo <= hi && axisComponent(boxes[indices[hi]].Center(), axis) >= splitPos {
			hi--
		}
		if lo < hi {
			indices[lo], indices[hi] = indices[hi], indices[lo]
			lo++
			hi--
		}
	}
	return int32(lo)
}

func axisComponent(v core.Vec3f, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// intersect runs a stack-based traversal: both children are pushed
// unconditionally once their box is hit, and the running closest-t is
// passed down as the tmax bound for deeper tests.
func (b *bvh) intersect(s *Scene, ray core.Ray, tmax float64) (core.ShadingPoint, bool) {
	if len(b.nodes) == 0 {
		return core.ShadingPoint{}, false
	}

	origin := ray.Origin.ToVec3()
	direction := ray.Direction.ToVec3()

	var stack [bvhStackDepth]int32
	sp := 0
	stack[sp] = b.root
	sp++

	bestT := tmax
	bestIdx := -1

	for sp > 0 {
		sp--
		node := &b.nodes[stack[sp]]
		if !node.box.Intersect(ray) {
			continue
		}

		if node.left < 0 {
			for i := node.primStart; i < node.primStart+node.primCount; i++ {
				primIdx := int(b.indices[i])
				if t, ok := s.Primitives[primIdx].Geometry.Intersect(origin, direction, bestT); ok {
					bestT = t
					bestIdx = primIdx
				}
			}
			continue
		}

		if sp < bvhStackDepth-1 {
			stack[sp] = node.left
			sp++
			stack[sp] = node.right
			sp++
		}
	}

	if bestIdx < 0 {
		return core.ShadingPoint{}, false
	}
	return s.shadingPointAt(bestIdx, bestT, ray), true
}
