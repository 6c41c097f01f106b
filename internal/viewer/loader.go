package viewer

import (
	"fmt"

	"github.com/qmuntal/gltf"
)

// LoadBounds opens a .glb or .gltf asset and returns the world-space bounds
// of every mesh in its default scene. Assets without a default scene are
// measured across all scenes.
func LoadBounds(path string) (Box3, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Box3{}, fmt.Errorf("opening asset %s: %w", path, err)
	}

	box := DocumentBounds(doc)
	if box.IsEmpty() {
		return box, fmt.Errorf("asset %s: %w", path, ErrEmptyBounds)
	}
	return box, nil
}

// DocumentBounds measures an already decoded glTF document.
func DocumentBounds(doc *gltf.Document) Box3 {
	box := EmptyBox()

	var scenes []*gltf.Scene
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		scenes = append(scenes, doc.Scenes[*doc.Scene])
	} else {
		scenes = doc.Scenes
	}

	// Only orphaned nodes exist when a file has no scenes at all.
	if len(scenes) == 0 {
		for _, n := range doc.Nodes {
			box = box.Union(nodeBounds(doc, n, Identity(), 0))
		}
		return box
	}

	for _, sc := range scenes {
		if sc == nil {
			continue
		}
		for _, idx := range sc.Nodes {
			if int(idx) >= len(doc.Nodes) {
				continue
			}
			box = box.Union(nodeBounds(doc, doc.Nodes[idx], Identity(), 0))
		}
	}
	return box
}

// maxDepth guards against cyclic node graphs in malformed files.
const maxDepth = 64

func nodeBounds(doc *gltf.Document, n *gltf.Node, parent Mat4, depth int) Box3 {
	box := EmptyBox()
	if n == nil || depth > maxDepth {
		return box
	}

	world := parent.Mul(localMatrix(n))

	if n.Mesh != nil && int(*n.Mesh) < len(doc.Meshes) {
		box = box.Union(world.TransformBox(meshBounds(doc, doc.Meshes[*n.Mesh])))
	}

	for _, child := range n.Children {
		if int(child) >= len(doc.Nodes) {
			continue
		}
		box = box.Union(nodeBounds(doc, doc.Nodes[child], world, depth+1))
	}
	return box
}

// meshBounds unions the POSITION accessor ranges of every primitive.
// glTF requires min and max on position accessors, so no vertex data is read.
func meshBounds(doc *gltf.Document, m *gltf.Mesh) Box3 {
	box := EmptyBox()
	if m == nil {
		return box
	}
	for _, prim := range m.Primitives {
		if prim == nil {
			continue
		}
		idx, ok := prim.Attributes[gltf.POSITION]
		if !ok || int(idx) >= len(doc.Accessors) {
			continue
		}
		acc := doc.Accessors[idx]
		if acc == nil || len(acc.Min) < 3 || len(acc.Max) < 3 {
			continue
		}
		box = box.Union(Box3{
			Min: Vec3{acc.Min[0], acc.Min[1], acc.Min[2]},
			Max: Vec3{acc.Max[0], acc.Max[1], acc.Max[2]},
		})
	}
	return box
}

func localMatrix(n *gltf.Node) Mat4 {
	m := Mat4(n.Matrix)
	if m != (Mat4{}) && m != Identity() {
		return m
	}

	rot := n.Rotation
	if rot == ([4]float64{}) {
		rot = [4]float64{0, 0, 0, 1}
	}
	scale := n.Scale
	if scale == ([3]float64{}) {
		scale = [3]float64{1, 1, 1}
	}
	return Compose(n.Translation, rot, scale)
}
